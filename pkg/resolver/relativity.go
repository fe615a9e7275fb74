package resolver

// IsRelative classifies path as relative or absolute using platform path
// syntax, not URL syntax. The rules are deliberately conservative about
// Windows-style inputs, since repository sources are frequently authored on
// Windows:
//
//   - shorter than two characters: relative
//   - leading separator: relative, unless doubled ("//server/share",
//     `\\server\share`) or followed by '?' (device-path prefix forms)
//   - drive-qualified `<letter>:<separator>`: absolute
//   - everything else: relative
//
// The predicate is isolated here so platform variants can be swapped without
// touching the resolution sequence.
func IsRelative(path string) bool {
	if len(path) < 2 {
		return true
	}

	if isSeparator(path[0]) {
		// Doubled separators and device-path prefixes address reserved
		// namespaces and are never treated as relative.
		return !isSeparator(path[1]) && path[1] != '?'
	}

	if isDriveLetter(path[0]) && path[1] == ':' {
		return !(len(path) > 2 && isSeparator(path[2]))
	}

	return true
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
