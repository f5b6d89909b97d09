package zannime

import (
	"net/url"

	log "github.com/sirupsen/logrus"
)

// assumedPageSize is used when the page-size probe fails; 24 matches the
// page size the upstream sources have historically served.
const assumedPageSize = 24

// catalogPaths maps catalog types to upstream listing paths.
var catalogPaths = map[string]string{
	"ongoing":   "ongoing",
	"completed": "completed",
	"recent":    "recent",
}

// Filter describes one catalog request. Search takes precedence over Genre,
// which takes precedence over Type. Skip is the platform's absolute item
// offset.
type Filter struct {
	Type   string
	Search string
	Genre  string
	Skip   int
}

// endpoint resolves the upstream path and query for the filter. ok is false
// when the filter matches no upstream listing and no request should be made.
func (f Filter) endpoint() (path string, query url.Values, ok bool) {
	switch {
	case f.Search != "":
		return "search", url.Values{"q": {f.Search}}, true
	case f.Genre != "":
		return "genres/" + url.PathEscape(f.Genre), nil, true
	default:
		path, ok = catalogPaths[f.Type]
		return path, nil, ok
	}
}

// pageForSkip translates an absolute item offset into a 1-based upstream page
// number for a known page size.
func pageForSkip(skip, itemsPerPage int) int {
	return skip/itemsPerPage + 1
}

// Catalog returns the upstream items that appear starting at the filter's
// offset. The upstream has no offset parameter and does not advertise its
// page size, so any non-zero offset first probes page 1 to learn it, then
// fetches the computed page. A failed probe falls back to the assumed page
// size rather than failing the catalog.
func (c *Client) Catalog(source string, f Filter) ([]Anime, error) {
	path, query, ok := f.endpoint()
	if !ok {
		return nil, nil
	}

	if f.Skip <= 0 {
		page, err := c.Page(source, path, query, 1)
		if err != nil {
			return nil, err
		}
		return page.Items, nil
	}

	probe, err := c.Page(source, path, query, 1)
	if err != nil {
		log.WithError(err).WithField("source", source).
			Warnf("catalog probe failed, assuming %d items per page", assumedPageSize)
		return c.pageItems(source, path, query, pageForSkip(f.Skip, assumedPageSize))
	}

	itemsPerPage := len(probe.Items)
	if itemsPerPage == 0 {
		return nil, nil
	}

	page := pageForSkip(f.Skip, itemsPerPage)
	if probe.Pagination != nil && probe.Pagination.TotalPage > 0 && page > probe.Pagination.TotalPage {
		return nil, nil
	}
	if page == 1 {
		return probe.Items, nil
	}
	return c.pageItems(source, path, query, page)
}

// pageItems fetches one page, mapping a 404 beyond page 1 to "no more items".
func (c *Client) pageItems(source, path string, query url.Values, page int) ([]Anime, error) {
	result, err := c.Page(source, path, query, page)
	if err != nil {
		if page > 1 && IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return result.Items, nil
}
