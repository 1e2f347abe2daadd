package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	validator, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name        string
		data        string
		wantErr     string
		wantServers int
	}{
		{
			name: "valid json catalog",
			data: `{
				"version": "1.0.0",
				"servers": [
					{"name": "fetch", "image": "ghcr.io/acme/fetch:latest", "transport": "stdio"},
					{"name": "search", "description": "web search"}
				]
			}`,
			wantServers: 2,
		},
		{
			name: "valid yaml catalog",
			data: `version: "1.0.0"
servers:
  - name: fetch
    image: ghcr.io/acme/fetch:latest
  - name: notify
`,
			wantServers: 2,
		},
		{
			name:        "empty servers array",
			data:        `{"servers": []}`,
			wantServers: 0,
		},
		{
			name:    "empty document",
			data:    "",
			wantErr: "cannot be empty",
		},
		{
			name:    "missing servers field",
			data:    `{"version": "1.0.0"}`,
			wantErr: "schema validation",
		},
		{
			name:    "servers not an array",
			data:    `{"servers": {"name": "fetch"}}`,
			wantErr: "schema validation",
		},
		{
			name:    "server without name",
			data:    `{"servers": [{"image": "ghcr.io/acme/fetch:latest"}]}`,
			wantErr: "schema validation",
		},
		{
			name:    "empty server name",
			data:    `{"servers": [{"name": ""}]}`,
			wantErr: "schema validation",
		},
		{
			name:    "duplicate server names",
			data:    `{"servers": [{"name": "fetch"}, {"name": "fetch"}]}`,
			wantErr: `duplicate server name "fetch"`,
		},
		{
			name:    "not json or yaml",
			data:    "{invalid",
			wantErr: "not valid JSON or YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			document, err := validator.Validate([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, document.Servers, tt.wantServers)
		})
	}
}

func TestValidateParsesFields(t *testing.T) {
	t.Parallel()

	validator, err := NewValidator()
	require.NoError(t, err)

	document, err := validator.Validate([]byte(`{
		"version": "2.1.0",
		"last_updated": "2025-06-01T12:00:00Z",
		"servers": [{"name": "fetch", "description": "fetches things", "url": "https://fetch.example.com"}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "2.1.0", document.Version)
	assert.Equal(t, "2025-06-01T12:00:00Z", document.LastUpdated)
	require.Len(t, document.Servers, 1)
	assert.Equal(t, "fetch", document.Servers[0].Name)
	assert.Equal(t, "fetches things", document.Servers[0].Description)
	assert.Equal(t, "https://fetch.example.com", document.Servers[0].URL)
}
