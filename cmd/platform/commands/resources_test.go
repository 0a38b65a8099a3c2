package commands_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/platform-client/cmd/platform/commands"
	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

func TestResourceCommands_Structure(t *testing.T) {
	groups := map[string][]string{
		"orgs":          {"get", "update", "usage"},
		"projects":      {"list", "get", "create", "delete"},
		"customers":     {"list", "get", "lookup", "delete"},
		"reservations":  {"list", "get", "cancel", "reschedule", "status", "availability", "delete"},
		"orders":        {"list", "get", "status", "cancel", "delete"},
		"menus":         {"list", "get", "publish", "qr-code", "delete"},
		"products":      {"list", "get", "availability", "delete"},
		"deployments":   {"list", "get", "activate", "deactivate", "logs", "delete"},
		"phone-numbers": {"list", "get", "search", "provision", "assign", "release"},
		"voice":         {"get", "reset", "voices"},
	}

	root := commands.NewRootCommand("dev", "none", "unknown")

	for group, names := range groups {
		cmd := findSubcommand(root, group)
		require.NotNil(t, cmd, group)
		assert.NotEmpty(t, cmd.Short, group)
		assert.Len(t, cmd.Commands(), len(names), group)

		for _, name := range names {
			assert.NotNil(t, findSubcommand(cmd, name), "%s %s", group, name)
		}
	}

	list := findSubcommand(findSubcommand(root, "projects"), "list")
	assert.Equal(t, "1", list.Flags().Lookup("page").DefValue)
	assert.Equal(t, "20", list.Flags().Lookup("page-size").DefValue)
	assert.Equal(t, "false", list.Flags().Lookup("all").DefValue)
	assert.NotNil(t, list.Flags().Lookup("sort-by"))
	assert.NotNil(t, list.Flags().Lookup("type"))

	release := findSubcommand(findSubcommand(root, "phone-numbers"), "release")
	assert.Equal(t, "release PHONE_NUMBER_ID", release.Use)
	assert.NotNil(t, release.Flags().ShorthandLookup("f"))
}

func TestProjectsList_Table(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/projects", request.URL.Path)
		assert.Equal(t, "page=1&pageSize=20&sortBy=name&sortDirection=desc&type=restaurant", request.URL.RawQuery)
		assert.Equal(t, testAPIKey, request.Header.Get(constants.HeaderAPIKey))
		assert.Equal(t, "platform-cli/1.2.3", request.Header.Get(constants.HeaderUserAgent))

		writeEnvelope(writer, http.StatusOK, pageOf([]map[string]interface{}{
			{"id": "p1", "name": "Trattoria", "type": "restaurant", "status": "active"},
			{"id": "p2", "name": "Bistro", "type": "restaurant", "status": "paused"},
		}, 1, 20, 45))
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "projects", "list", "--sort-by", "name", "--desc", "--type", "restaurant")...)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Stdout, "Trattoria")
	assert.Contains(t, result.Stdout, "Bistro")
	assert.Contains(t, result.Stdout, "Showing page 1 of 3 (45 total)")
}

func TestProjectsList_AllPagesJSON(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		calls.Add(1)

		if request.URL.Query().Get("page") == "1" {
			writeEnvelope(writer, http.StatusOK, pageOf([]map[string]interface{}{{"id": "p1"}}, 1, 1, 2))

			return
		}

		writeEnvelope(writer, http.StatusOK, pageOf([]map[string]interface{}{{"id": "p2"}}, 2, 1, 2))
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "projects", "list", "--all", "--page-size", "1", "-o", "json")...)
	require.NoError(t, result.Err)

	var projects []platform.Project
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "p1", projects[0].ID)
	assert.Equal(t, "p2", projects[1].ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestProjectsList_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeEnvelope(writer, http.StatusOK, pageOf([]map[string]interface{}{}, 1, 20, 0))
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "projects", "list")...)
	require.NoError(t, result.Err)
	assert.Equal(t, "No projects found\n", result.Stdout)
}

func TestProjectsList_PageSizeOutOfRange(t *testing.T) {
	result := executeCommand(t, "", "--api-key", testAPIKey, "projects", "list", "--page-size", "500")
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "--page-size must be between 1 and 100")
}

func TestProjectsCreate_InvalidType(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "projects", "create", "Shop", "--type", "spaceship")...)
	require.Error(t, result.Err)

	formatted := commands.FormatError(result.Err)
	assert.True(t, strings.HasPrefix(formatted, "invalid input:\n  - type:"), formatted)
	assert.Equal(t, int32(0), calls.Load())
}

func TestOrdersGet_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/orders/o404", request.URL.Path)
		writeError(writer, http.StatusNotFound, constants.PlatformCodeNotFound, "Order not found")
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "orders", "get", "o404")...)
	require.Error(t, result.Err)

	assert.True(t, platform.IsNotFound(result.Err))
	assert.True(t, strings.HasPrefix(commands.FormatError(result.Err), "NOT_FOUND: Order not found"))
}

func TestOrdersGet_Details(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeEnvelope(writer, http.StatusOK, map[string]interface{}{
			"id":          "o1",
			"orderNumber": "A-100",
			"type":        "takeout",
			"status":      "ready",
			"currency":    "USD",
			"items": []map[string]interface{}{
				{"productId": "prod1", "name": "Margherita", "quantity": 2, "unitPrice": "12.5"},
			},
			"subtotal": "25",
			"tax":      "2.25",
			"total":    "27.25",
		})
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "orders", "get", "o1")...)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Stdout, "2 x Margherita @ 12.50 USD")
	assert.Contains(t, result.Stdout, "27.25 USD")
}

func TestCustomersLookup(t *testing.T) {
	t.Run("flag required", func(t *testing.T) {
		result := executeCommand(t, "", "--api-key", testAPIKey, "customers", "lookup")
		assert.ErrorIs(t, result.Err, constants.ErrLookupFlagRequired)
	})

	t.Run("flags conflict", func(t *testing.T) {
		result := executeCommand(t, "", "--api-key", testAPIKey, "customers", "lookup", "--phone", "+15551234567", "--email", "a@b.co")
		assert.ErrorIs(t, result.Err, constants.ErrLookupFlagConflict)
	})

	t.Run("no match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/customers/email/a@b.co", request.URL.Path)
			writeEnvelope(writer, http.StatusOK, nil)
		}))
		defer server.Close()

		result := executeCommand(t, "", apiArgs(server.URL, "customers", "lookup", "--email", "a@b.co")...)
		require.Error(t, result.Err)
		assert.Equal(t, "no customer matches 'a@b.co'", result.Err.Error())
	})

	t.Run("match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/customers/phone/+15551234567", request.URL.Path)
			writeEnvelope(writer, http.StatusOK, map[string]interface{}{
				"id": "c1", "firstName": "Ada", "lastName": "Lovelace", "phone": "+15551234567",
			})
		}))
		defer server.Close()

		result := executeCommand(t, "", apiArgs(server.URL, "customers", "lookup", "--phone", "+15551234567")...)
		require.NoError(t, result.Err)
		assert.Contains(t, result.Stdout, "Ada Lovelace")
	})
}

func TestDeleteCommand_Confirmation(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodDelete, request.Method)
		assert.Equal(t, "/menus/m1", request.URL.Path)
		writeEnvelope(writer, http.StatusOK, true)
	}))
	defer server.Close()

	result := executeCommand(t, "n\n", apiArgs(server.URL, "menus", "delete", "m1")...)
	require.NoError(t, result.Err)
	assert.Equal(t, "Aborted\n", result.Stdout)
	assert.Contains(t, result.Stderr, "Really delete menu 'm1'?")
	assert.Equal(t, int32(0), calls.Load())

	result = executeCommand(t, "yes\n", apiArgs(server.URL, "menus", "delete", "m1")...)
	require.NoError(t, result.Err)
	assert.Equal(t, "menu 'm1' deleted\n", result.Stdout)

	result = executeCommand(t, "", apiArgs(server.URL, "menus", "delete", "m1", "--force", "-o", "json")...)
	require.NoError(t, result.Err)
	assert.JSONEq(t, `{"id":"m1","deleted":true}`, result.Stdout)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPhoneNumbersRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodDelete, request.Method)
		assert.Equal(t, "/phone-numbers/pn1", request.URL.Path)
		writeEnvelope(writer, http.StatusOK, nil)
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "phone-numbers", "release", "pn1", "-f")...)
	require.NoError(t, result.Err)
	assert.Equal(t, "phone number 'pn1' released\n", result.Stdout)
}

func TestReservationsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPatch, request.Method)
		assert.Equal(t, "/reservations/r1/status", request.URL.Path)

		body, err := io.ReadAll(request.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"status":"seated"}`, string(body))

		writeEnvelope(writer, http.StatusOK, map[string]interface{}{"id": "r1", "status": "seated"})
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "reservations", "status", "r1", "seated")...)
	require.NoError(t, result.Err)
	assert.Equal(t, "Reservation 'r1' is now seated\n", result.Stdout)
}

func TestProductsAvailability_InvalidValue(t *testing.T) {
	result := executeCommand(t, "", "--api-key", testAPIKey, "products", "availability", "prod1", "maybe")
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "availability must be true or false")
}

func TestMenusQRCode_WritesImage(t *testing.T) {
	image := []byte("\x89PNG fake image")

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/menus/m1/qr-code", request.URL.Path)

		writeEnvelope(writer, http.StatusOK, map[string]interface{}{
			"menuUrl":   "https://menu.example.com/m1",
			"imageUrl":  "https://cdn.example.com/m1.png",
			"imageData": "data:image/png;base64," + base64.StdEncoding.EncodeToString(image),
			"format":    "png",
		})
	}))
	defer server.Close()

	outFile := filepath.Join(t.TempDir(), "menu.png")

	result := executeCommand(t, "", apiArgs(server.URL, "menus", "qr-code", "m1", "--size", "256", "--out", outFile)...)
	require.NoError(t, result.Err)

	written, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, image, written)
	assert.Contains(t, result.Stdout, "https://menu.example.com/m1")
}

func TestDeploymentsLogs_YAML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/deployments/d1/logs", request.URL.Path)
		assert.Equal(t, "error", request.URL.Query().Get("level"))

		writeEnvelope(writer, http.StatusOK, pageOf([]map[string]interface{}{
			{"timestamp": "2026-10-01T12:00:00Z", "level": "error", "message": "call dropped", "callId": "call-1"},
		}, 1, 20, 1))
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "deployments", "logs", "d1", "--level", "error", "-o", "yaml")...)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Stdout, "message: call dropped")
	assert.Contains(t, result.Stdout, "call_id: call-1")
}

func TestVoiceVoices_EnvConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/voices", request.URL.Path)
		assert.Equal(t, "pk_env_key", request.Header.Get(constants.HeaderAPIKey))

		writeEnvelope(writer, http.StatusOK, []map[string]interface{}{
			{"id": "v1", "name": "Aria", "language": "en-US", "gender": "female"},
		})
	}))
	defer server.Close()

	t.Setenv("PLATFORM_API_KEY", "pk_env_key")
	t.Setenv("PLATFORM_BASE_URL", server.URL)

	result := executeCommand(t, "", "voice", "voices")
	require.NoError(t, result.Err)
	assert.Contains(t, result.Stdout, "Aria")
}

func TestProjectsCreate_ServerRejectsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"success": false,
			"error": map[string]interface{}{
				"code":    constants.PlatformCodeValidation,
				"message": "Invalid project",
				"details": []map[string]interface{}{{"field": "name", "reason": "is already taken"}},
			},
		})
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "projects", "create", "Trattoria")...)
	require.Error(t, result.Err)
	assert.True(t, platform.IsValidationRejected(result.Err))

	formatted := commands.FormatError(result.Err)
	assert.True(t, strings.HasPrefix(formatted, "VALIDATION_ERROR: Invalid project"), formatted)
	assert.True(t, strings.HasSuffix(formatted, "\n  - name: is already taken"), formatted)
}

func TestProductsGet_Details(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/products/prod1", request.URL.Path)
		writeEnvelope(writer, http.StatusOK, map[string]interface{}{
			"id": "prod1", "name": "Tiramisu", "price": "7.5", "currency": "EUR", "available": false,
		})
	}))
	defer server.Close()

	result := executeCommand(t, "", apiArgs(server.URL, "products", "get", "prod1")...)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Stdout, "7.50 EUR")
	assert.Contains(t, result.Stdout, constants.BooleanFalse)
}
