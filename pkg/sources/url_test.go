package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		url       string
		wantValid bool
		wantError string
	}{
		{name: "https url", url: "https://registry.example.com/registry.json", wantValid: true},
		{name: "http url", url: "http://registry.example.com/registry.json", wantValid: true},
		{name: "url with port and query", url: "https://registry.example.com:8443/v0?format=json", wantValid: true},
		{name: "empty url", url: "", wantValid: false, wantError: "cannot be empty"},
		{name: "whitespace only", url: "   ", wantValid: false, wantError: "cannot be empty"},
		{name: "ftp scheme", url: "ftp://registry.example.com/registry.json", wantValid: false, wantError: "http or https"},
		{name: "file scheme", url: "file:///etc/registry.json", wantValid: false, wantError: "http or https"},
		{name: "relative url", url: "/registry.json", wantValid: false, wantError: "http or https"},
		{name: "scheme without host", url: "https://", wantValid: false, wantError: "must be absolute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ValidateURL(HTTPVariant{URL: tt.url})
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantError != "" {
				assert.Contains(t, result.Error, tt.wantError)
			}
		})
	}
}
