package main

import (
	"path"
	"strings"
)

var identifierReplacer = strings.NewReplacer(".", "_", "$", "_")

// identifier derives the C++ variable stem for an entry: the final
// path component with every '.' and '$' replaced by '_'. Nothing else
// is sanitized and no uniqueness check is made — two entries whose
// final components coincide produce colliding names and the output
// will not compile; tighten the patterns in that case.
func identifier(relPath string) string {
	return identifierReplacer.Replace(path.Base(relPath))
}

// extension returns the final component's extension without its
// leading dot. A component with no dot, or with only leading dots
// (".hidden"), has no extension.
func extension(relPath string) string {
	base := path.Base(relPath)
	leading := 0
	for leading < len(base) && base[leading] == '.' {
		leading++
	}
	i := strings.LastIndexByte(base, '.')
	if i < leading {
		return ""
	}
	return base[i+1:]
}
