// Package sources implements the registry source abstraction: resolving a
// registry spec into its canonical (type, location, syncInterval) form and
// validating each source kind.
//
// A registry catalog can come from three places:
//   - a ConfigMap entry in the registry's namespace
//   - a file in a Git repository on a known hosting provider
//   - a direct HTTP(S) URL
//
// The wire representation is a struct with one optional field per kind;
// ExtractVariant converts it into an explicit sum type so that "more than
// one populated" is an extraction error rather than a validation afterthought.
//
// Validation is format-only. Reachability is optimistic: the only network
// calls made here are best-effort probes (raw-content checks, logo
// discovery) that are bounded by a short deadline and can never fail
// validation.
package sources
