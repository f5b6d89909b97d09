package types

import "strings"

// idSuffix distinguishes the anime catalogs of a source from any future
// non-anime catalogs it may grow.
const idSuffix = "-anime"

// Source is one upstream catalog namespace advertised by the listing call.
// The set of sources is loaded once at startup and read-only afterwards.
type Source struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Route string `json:"route"`

	// Genres populates the catalog genre filter options in the manifest.
	// Empty when the upstream genre listing was unavailable.
	Genres []string `json:"genres,omitempty"`
}

// NewSource derives a Source from an upstream route string such as "/anix".
func NewSource(route, title string) Source {
	route = strings.TrimPrefix(route, "/")
	return Source{
		ID:    route + idSuffix,
		Name:  title,
		Route: route,
	}
}

// IDPrefix is the item-id namespace for this source, e.g. "anix:".
func (s Source) IDPrefix() string {
	return s.Route + ":"
}

// SourceByCatalogID finds the source owning a manifest catalog id prefix,
// e.g. "anix-anime" for catalog "anix-anime-ongoing".
func SourceByCatalogID(sources []Source, catalogID string) (Source, bool) {
	for _, s := range sources {
		if s.ID == catalogID {
			return s, true
		}
	}
	return Source{}, false
}

// SourceByRoute finds the source an item id belongs to by its route part.
func SourceByRoute(sources []Source, route string) (Source, bool) {
	for _, s := range sources {
		if s.Route == route {
			return s, true
		}
	}
	return Source{}, false
}
