// Package resolver turns a location string into a classified PathInfo.
//
// A location may be an absolute HTTP(S) URL, an absolute filesystem path, or
// a path relative to a base location. Resolution runs a fixed decision
// sequence: URL candidacy first (the input on its own, then joined to the
// base), then filesystem classification (the input as given, then joined to
// the base). The first step that produces a recognized location wins.
//
// Resolve never returns an error. Unresolvable inputs and failed reachability
// probes end up as fields on the returned PathInfo; callers branch on Valid
// and Type.
package resolver
