package main

import "strings"

// looksGenerated reports whether a filename probably denotes machine-generated
// code, e.g. "foo.gen.go", "parser.g.dart", or "generated_code.py". It looks
// for a marker starting at the beginning of the name or right after a dot:
// "g" and "gen" must be followed by a dot or the end of the name, while
// "generated" matches as a bare prefix. Best-effort by design; false
// positives and negatives are acceptable.
func looksGenerated(name string) bool {
	for i := 0; i < len(name); i++ {
		if i > 0 && name[i-1] != '.' {
			continue
		}
		rest := name[i:]
		if strings.HasPrefix(rest, "generated") {
			return true
		}
		for _, marker := range []string{"gen", "g"} {
			if strings.HasPrefix(rest, marker) &&
				(len(rest) == len(marker) || rest[len(marker)] == '.') {
				return true
			}
		}
	}
	return false
}
