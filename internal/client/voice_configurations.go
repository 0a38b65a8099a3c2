package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const voiceConfigurationSegment = "voice-configuration"

// VoiceConfigurationsClient implements platform.VoiceConfigurationsClient.
// Configurations are nested under their project.
type VoiceConfigurationsClient struct {
	httpClient *http.Client
}

// NewVoiceConfigurationsClient creates a new voice configurations client.
func NewVoiceConfigurationsClient(httpClient *http.Client) *VoiceConfigurationsClient {
	return &VoiceConfigurationsClient{
		httpClient: httpClient,
	}
}

func voiceConfigurationPath(projectID string) string {
	return resourcePath(projectsPath, projectID, voiceConfigurationSegment)
}

// Get implements platform.VoiceConfigurationsClient.Get.
func (c *VoiceConfigurationsClient) Get(ctx context.Context, projectID string) (*platform.VoiceConfiguration, error) {
	if err := requireID("projectId", projectID); err != nil {
		return nil, err
	}

	return http.Get[*platform.VoiceConfiguration](ctx, c.httpClient, voiceConfigurationPath(projectID), nil)
}

// Update implements platform.VoiceConfigurationsClient.Update. The request
// replaces the whole configuration.
func (c *VoiceConfigurationsClient) Update(ctx context.Context, projectID string, request *platform.VoiceConfigurationRequest) (*platform.VoiceConfiguration, error) {
	if err := requireID("projectId", projectID); err != nil {
		return nil, err
	}

	return http.Put[*platform.VoiceConfigurationRequest, *platform.VoiceConfiguration](
		ctx, c.httpClient, voiceConfigurationPath(projectID), request, platform.VoiceConfigurationSchema)
}

// Reset implements platform.VoiceConfigurationsClient.Reset.
func (c *VoiceConfigurationsClient) Reset(ctx context.Context, projectID string) (bool, error) {
	if err := requireID("projectId", projectID); err != nil {
		return false, err
	}

	return deleteResource(ctx, c.httpClient, voiceConfigurationPath(projectID))
}

// ListVoices implements platform.VoiceConfigurationsClient.ListVoices.
func (c *VoiceConfigurationsClient) ListVoices(ctx context.Context) ([]platform.Voice, error) {
	voices, err := http.Get[[]platform.Voice](ctx, c.httpClient, "/voices", nil)
	if err != nil {
		return nil, err
	}

	if voices == nil {
		voices = []platform.Voice{}
	}

	return voices, nil
}
