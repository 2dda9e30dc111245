package walker

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

// SortOrder controls the order siblings are visited in
type SortOrder string

const (
	// SortNone keeps whatever order the filesystem listing yields
	SortNone      SortOrder = "none"
	SortName      SortOrder = "name"
	SortDirsFirst SortOrder = "dirsfirst"
)

// ParseSortOrder parses a sort order string
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "name":
		return SortName, nil
	case "dirsfirst", "dirs-first":
		return SortDirsFirst, nil
	default:
		return "", fmt.Errorf("invalid sort order: %s (must be none, name, or dirsfirst)", s)
	}
}

func sortEntries(entries []fs.DirEntry, order SortOrder) {
	switch order {
	case SortName:
		slices.SortStableFunc(entries, byName)
	case SortDirsFirst:
		slices.SortStableFunc(entries, func(a, b fs.DirEntry) int {
			if a.IsDir() != b.IsDir() {
				if a.IsDir() {
					return -1
				}
				return 1
			}
			return byName(a, b)
		})
	}
}

func byName(a, b fs.DirEntry) int {
	return strings.Compare(a.Name(), b.Name())
}
