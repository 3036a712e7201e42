package gwy

import (
	"sort"
	"strconv"
	"strings"
)

// Enumeration helpers scan a top-level container object for object items
// whose names follow the conventional data layout and return the numeric
// ids found, sorted ascending.

// EnumerateChannels returns the ids of image channels, items named
// "/<id>/data".
func EnumerateChannels(container *Object) []int {
	var ids []int
	container.ForEach(func(it *Item) {
		if it.typ != TypeObject {
			return
		}
		name := it.name
		if !strings.HasSuffix(name, "/data") || !strings.HasPrefix(name, "/") {
			return
		}
		if id, ok := parseID(name[1 : len(name)-len("/data")]); ok {
			ids = append(ids, id)
		}
	})
	sort.Ints(ids)
	return ids
}

// EnumerateGraphs returns the ids of graphs, items named
// "/0/graph/graph/<id>".
func EnumerateGraphs(container *Object) []int {
	return enumeratePrefixed(container, "/0/graph/graph/")
}

// EnumerateVolume returns the ids of volume data, items named "/brick/<id>".
func EnumerateVolume(container *Object) []int {
	return enumeratePrefixed(container, "/brick/")
}

// EnumerateXYZ returns the ids of XYZ data, items named "/xyz/<id>".
func EnumerateXYZ(container *Object) []int {
	return enumeratePrefixed(container, "/xyz/")
}

// EnumerateSpectra returns the ids of spectra sets, items named "/sps/<id>".
func EnumerateSpectra(container *Object) []int {
	return enumeratePrefixed(container, "/sps/")
}

func enumeratePrefixed(container *Object, prefix string) []int {
	var ids []int
	container.ForEach(func(it *Item) {
		if it.typ != TypeObject || !strings.HasPrefix(it.name, prefix) {
			return
		}
		if id, ok := parseID(it.name[len(prefix):]); ok {
			ids = append(ids, id)
		}
	})
	sort.Ints(ids)
	return ids
}

// parseID parses a non-negative decimal id with no extra characters.
func parseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
