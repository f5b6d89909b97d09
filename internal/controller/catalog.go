package controller

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/Fauzanmhr/zannime-stremio/internal/mapping"
	"github.com/Fauzanmhr/zannime-stremio/internal/provider/zannime"
	"github.com/Fauzanmhr/zannime-stremio/internal/types"
)

var catalogIDPattern = regexp.MustCompile(`^(.+?)-(ongoing|completed|recent)$`)

// Catalog serves one catalog page. Every failure mode degrades to an empty
// metas list; the platform never receives a protocol-level fault.
func (ctrl *BaseController) Catalog(c *fiber.Ctx) error {
	empty := types.CatalogResponse{Metas: []types.Meta{}}

	match := catalogIDPattern.FindStringSubmatch(param(c, "id"))
	if match == nil {
		return c.JSON(empty)
	}
	source, ok := types.SourceByCatalogID(ctrl.sources, match[1])
	if !ok {
		return c.JSON(empty)
	}

	extra := parseExtra(c)
	skip, _ := strconv.Atoi(extra.Get("skip"))
	filter := zannime.Filter{
		Type:   match[2],
		Search: extra.Get("search"),
		Genre:  extra.Get("genre"),
		Skip:   skip,
	}

	items, err := ctrl.client.Catalog(source.Route, filter)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"source": source.Route,
			"type":   filter.Type,
		}).Warn("catalog fetch failed, returning empty page")
		return c.JSON(empty)
	}

	return c.JSON(types.CatalogResponse{
		Metas: lo.Map(items, func(a zannime.Anime, _ int) types.Meta {
			return mapping.Meta(source, a)
		}),
	})
}

// parseExtra merges the path-segment extra ("skip=100&genre=Action") with
// plain query parameters; the host platform uses either form.
func parseExtra(c *fiber.Ctx) url.Values {
	extra, err := url.ParseQuery(param(c, "extra"))
	if err != nil {
		extra = url.Values{}
	}
	for key, vals := range c.Queries() {
		if extra.Get(key) == "" {
			extra.Set(key, vals)
		}
	}
	return extra
}

// param returns a path parameter with percent-encoding undone.
func param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
