package analyzer

import "strings"

// FindMatchingSourceFiles returns every source file whose base name equals
// baseName and whose extension equals extension, both compared
// case-insensitively. Input order is preserved.
//
// Zero, one and many matches are all meaningful outcomes, not errors; the
// caller decides how to interpret cardinality.
func FindMatchingSourceFiles(sourceFiles []FileRecord, baseName, extension string) []FileRecord {
	var matches []FileRecord
	for _, f := range sourceFiles {
		if strings.EqualFold(f.BaseName, baseName) && strings.EqualFold(f.Extension, extension) {
			matches = append(matches, f)
		}
	}
	return matches
}
