package controller

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/Fauzanmhr/zannime-stremio/internal/identifier"
	"github.com/Fauzanmhr/zannime-stremio/internal/mapping"
	"github.com/Fauzanmhr/zannime-stremio/internal/types"
)

// Meta serves the detail record of one item. A malformed id, unknown source
// or failed detail fetch yields {"meta": null} with status 200.
func (ctrl *BaseController) Meta(c *fiber.Ctx) error {
	id, err := identifier.Decode(param(c, "id"))
	if err != nil {
		return c.JSON(types.MetaResponse{})
	}
	source, ok := types.SourceByRoute(ctrl.sources, id.Source)
	if !ok {
		return c.JSON(types.MetaResponse{})
	}

	meta, err := mapping.GetMeta(ctrl.client, source, id.AnimeID)
	if err != nil {
		log.WithError(err).WithField("id", id.AnimeID).Warn("meta fetch failed")
		return c.JSON(types.MetaResponse{})
	}
	return c.JSON(types.MetaResponse{Meta: meta})
}
