package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourcePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{name: "plain id", segments: []string{"c1"}, want: "/customers/c1"},
		{name: "phone", segments: []string{"phone", "+15551234567"}, want: "/customers/phone/%2B15551234567"},
		{name: "email", segments: []string{"email", "a+b@example.com"}, want: "/customers/email/a%2Bb%40example.com"},
		{name: "sub-delimiters", segments: []string{"$&=:"}, want: "/customers/%24%26%3D%3A"},
		{name: "slash and space", segments: []string{"a/b c"}, want: "/customers/a%2Fb%20c"},
		{name: "action suffix", segments: []string{"r1", "cancel"}, want: "/customers/r1/cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, resourcePath(customersPath, tt.segments...))
		})
	}
}
