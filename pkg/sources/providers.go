package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/toolforge/registry-console/pkg/httpclient"
)

// ProbeTimeout bounds every speculative network probe. A probe that does not
// answer within this window is treated as "not found", never as a failure.
const ProbeTimeout = 3 * time.Second

// Provider describes a known Git hosting provider. Adding a provider is a
// data change: a new table entry, not new branching logic.
type Provider struct {
	// Host is the hostname of the provider
	Host string

	// RawContentURL builds the URL serving the raw content of a file in
	// the given repository at the given ref
	RawContentURL func(owner, repo, ref, path string) string
}

// providers is the allow-list of Git hosting providers. A repository URL
// whose host is not in this table fails validation.
var providers = []Provider{
	{
		Host: "github.com",
		RawContentURL: func(owner, repo, ref, path string) string {
			return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s", owner, repo, ref, path)
		},
	},
	{
		Host: "gitlab.com",
		RawContentURL: func(owner, repo, ref, path string) string {
			return fmt.Sprintf("https://gitlab.com/%s/%s/-/raw/%s/%s", owner, repo, ref, path)
		},
	},
	{
		Host: "bitbucket.org",
		RawContentURL: func(owner, repo, ref, path string) string {
			return fmt.Sprintf("https://bitbucket.org/%s/%s/raw/%s/%s", owner, repo, ref, path)
		},
	},
	{
		Host: "codeberg.org",
		RawContentURL: func(owner, repo, ref, path string) string {
			return fmt.Sprintf("https://codeberg.org/%s/%s/raw/branch/%s/%s", owner, repo, ref, path)
		},
	},
}

// providerForHost returns the provider entry for a hostname, if any.
func providerForHost(host string) (*Provider, bool) {
	host = strings.ToLower(host)
	for i := range providers {
		if providers[i].Host == host {
			return &providers[i], true
		}
	}
	return nil, false
}

// splitRepositoryPath extracts the owner and repository segments from a
// repository URL path. The repository name has any trailing ".git" stripped.
func splitRepositoryPath(repoURL *url.URL) (owner, repo string, ok bool) {
	segments := nonEmptySegments(repoURL.Path)
	if len(segments) < 2 {
		return "", "", false
	}
	return segments[0], strings.TrimSuffix(segments[1], ".git"), true
}

// nonEmptySegments splits a URL path into its non-empty segments.
func nonEmptySegments(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// RawContentURL builds the raw-content URL for a file in a repository hosted
// on a known provider. Returns false when the repository URL does not parse
// or its host is not in the provider table.
func RawContentURL(repository, ref, path string) (string, bool) {
	parsed, err := url.Parse(repository)
	if err != nil {
		return "", false
	}
	provider, ok := providerForHost(parsed.Hostname())
	if !ok {
		return "", false
	}
	owner, repo, ok := splitRepositoryPath(parsed)
	if !ok {
		return "", false
	}
	if ref == "" {
		ref = DefaultGitBranch
	}
	return provider.RawContentURL(owner, repo, ref, path), true
}

// logoCandidates are the file names probed during logo discovery, in order.
var logoCandidates = []string{"logo.png", "logo.svg", "assets/logo.png", "docs/logo.png"}

// DiscoverLogo probes a repository for a logo image and returns its
// raw-content URL, or "" when none was found. Every probe is bounded by
// ProbeTimeout and failures are swallowed: logo discovery is auxiliary and
// must never fail the caller.
func DiscoverLogo(ctx context.Context, client httpclient.Client, repository, ref string) string {
	if client == nil {
		return ""
	}
	for _, candidate := range logoCandidates {
		rawURL, ok := RawContentURL(repository, ref, candidate)
		if !ok {
			return ""
		}

		probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
		found, err := client.Head(probeCtx, rawURL)
		cancel()
		if err == nil && found {
			return rawURL
		}
	}
	return ""
}

// ProbeContent checks whether the registry file of a Git source appears
// reachable via the provider's raw-content endpoint. The probe is
// best-effort: any failure, including an unknown provider, reports false
// without an error so callers can record reachability without failing.
func ProbeContent(ctx context.Context, client httpclient.Client, repository, ref, path string) bool {
	if client == nil {
		return false
	}
	rawURL, ok := RawContentURL(repository, ref, path)
	if !ok {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	found, err := client.Head(probeCtx, rawURL)
	return err == nil && found
}
