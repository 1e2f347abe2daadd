package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateGitRepositoryURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		repository string
		wantValid  bool
		wantError  string
	}{
		{
			name:       "github repository",
			repository: "https://github.com/acme/tools",
			wantValid:  true,
		},
		{
			name:       "gitlab repository",
			repository: "https://gitlab.com/acme/tools",
			wantValid:  true,
		},
		{
			name:       "trailing .git suffix",
			repository: "https://github.com/acme/tools.git",
			wantValid:  true,
		},
		{
			name:       "empty repository",
			repository: "",
			wantValid:  false,
			wantError:  "cannot be empty",
		},
		{
			name:       "plain http rejected",
			repository: "http://github.com/acme/tools",
			wantValid:  false,
			wantError:  "must use HTTPS",
		},
		{
			name:       "ftp scheme rejected",
			repository: "ftp://acme/tools",
			wantValid:  false,
			wantError:  "must use HTTPS",
		},
		{
			name:       "ssh scheme rejected",
			repository: "git@github.com:acme/tools.git",
			wantValid:  false,
			wantError:  "must use HTTPS",
		},
		{
			name:       "unknown host rejected",
			repository: "https://git.internal.example.com/acme/tools",
			wantValid:  false,
			wantError:  "not a known hosting provider",
		},
		{
			name:       "missing repository segment",
			repository: "https://github.com/acme",
			wantValid:  false,
			wantError:  "must include owner and repository",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ValidateGit(GitVariant{Repository: tt.repository})
			assert.Equal(t, tt.wantValid, result.Valid)
			if tt.wantError != "" {
				assert.Contains(t, result.Error, tt.wantError)
			}
		})
	}
}

func TestValidateGitBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		branch    string
		wantValid bool
	}{
		{name: "empty branch defaults later", branch: "", wantValid: true},
		{name: "simple branch", branch: "main", wantValid: true},
		{name: "release branch with slash", branch: "release/1.2", wantValid: true},
		{name: "dots and dashes", branch: "v1.2-rc.1", wantValid: true},
		{name: "spaces rejected", branch: "my branch", wantValid: false},
		{name: "tilde rejected", branch: "main~1", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ValidateGit(GitVariant{
				Repository: "https://github.com/acme/tools",
				Branch:     tt.branch,
			})
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				// Format rejection of the branch, not a reachability
				// failure.
				assert.True(t, result.Accessible)
				assert.Contains(t, result.Error, "branch")
			}
		})
	}
}

func TestValidateGitPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		wantValid    bool
		wantError    string
		wantWarnings int
	}{
		{name: "json path", path: "registry.json", wantValid: true},
		{name: "nested yaml path", path: "data/registry.yaml", wantValid: true},
		{name: "yml path", path: "registry.yml", wantValid: true},
		{name: "unrecognized extension warns", path: "registry.toml", wantValid: true, wantWarnings: 1},
		{name: "blank path", path: " ", wantValid: false, wantError: "cannot be blank"},
		{name: "absolute path", path: "/registry.json", wantValid: false, wantError: "must be relative"},
		{name: "backslash prefix", path: `\registry.json`, wantValid: false, wantError: "must be relative"},
		{name: "invalid character", path: "reg?istry.json", wantValid: false, wantError: "invalid character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := ValidateGit(GitVariant{
				Repository: "https://github.com/acme/tools",
				Path:       tt.path,
			})
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Len(t, result.Warnings, tt.wantWarnings)
			if tt.wantError != "" {
				assert.True(t, result.Accessible)
				assert.Contains(t, result.Error, tt.wantError)
			}
		})
	}
}

func TestValidateGitNoPathIsValid(t *testing.T) {
	t.Parallel()

	result := ValidateGit(GitVariant{Repository: "https://github.com/acme/tools"})
	assert.True(t, result.Valid)
	assert.True(t, result.Accessible)
	assert.Empty(t, result.Warnings)
}
