// Package classify routes file extensions to category names.
//
// A Map holds an ordered list of categories; lookups scan in declaration
// order and the first category containing the extension wins, so overlapping
// declarations resolve deterministically. Extensions absent from every
// category fall back to DefaultCategory. Classification is a total function
// over strings: it never errors and never touches the filesystem.
package classify

import "strings"

// DefaultCategory is the reserved bucket for extensions no category claims.
const DefaultCategory = "Others"

// Category pairs a bucket name with the extensions routed into it.
type Category struct {
	Name       string
	Extensions []string
}

// Map is an immutable ordered extension-to-category lookup table.
type Map struct {
	categories []entry
}

type entry struct {
	name string
	exts map[string]struct{}
}

// NewMap builds a Map from the given categories, preserving their order.
// Extensions are lower-cased; lookup is case-insensitive.
func NewMap(categories []Category) *Map {
	entries := make([]entry, 0, len(categories))
	for _, category := range categories {
		exts := make(map[string]struct{}, len(category.Extensions))
		for _, ext := range category.Extensions {
			exts[strings.ToLower(ext)] = struct{}{}
		}
		entries = append(entries, entry{name: category.Name, exts: exts})
	}
	return &Map{categories: entries}
}

// Classify returns the name of the first category whose extension set
// contains ext, or DefaultCategory when none does.
func (m *Map) Classify(ext string) string {
	ext = strings.ToLower(ext)
	for _, category := range m.categories {
		if _, ok := category.exts[ext]; ok {
			return category.name
		}
	}
	return DefaultCategory
}

// Names returns the category names in declaration order, with
// DefaultCategory appended when not already declared.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.categories)+1)
	hasDefault := false
	for _, category := range m.categories {
		names = append(names, category.name)
		if category.name == DefaultCategory {
			hasDefault = true
		}
	}
	if !hasDefault {
		names = append(names, DefaultCategory)
	}
	return names
}
