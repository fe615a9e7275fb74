package resolver

import (
	"net/url"
	"strings"
)

// httpCandidate implements URL candidacy. If path on its own parses as an
// absolute URI it is the only candidate considered; a base-joined candidate
// is built only for inputs that are not absolute URIs themselves. The
// returned location is non-empty only for well-formed http/https candidates.
func httpCandidate(path, basePath string) (string, bool) {
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return asHTTP(u)
	}

	if basePath == "" {
		return "", false
	}

	u, err := url.Parse(joinLocation(basePath, path))
	if err != nil || !u.IsAbs() {
		return "", false
	}
	return asHTTP(u)
}

func asHTTP(u *url.URL) (string, bool) {
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return u.String(), true
	}
	return "", false
}

// joinLocation concatenates a base location and a relative path with a single
// slash. Backslashes in the relative part are treated as path separators, not
// escapes, so sources authored with Windows-style relative paths join
// correctly. Each segment is percent-escaped for URL safety.
func joinLocation(base, rel string) string {
	base = strings.TrimRight(base, "/\\")
	rel = strings.TrimLeft(rel, "/\\")
	rel = strings.ReplaceAll(rel, "\\", "/")

	segments := strings.Split(rel, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return base + "/" + strings.Join(segments, "/")
}
