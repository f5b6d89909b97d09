package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Fauzanmhr/zannime-stremio/internal/types"
)

// Stream serves the playable candidates of one video. The resolver swallows
// all failures, so the response is always a valid, possibly empty list.
func (ctrl *BaseController) Stream(c *fiber.Ctx) error {
	streams := ctrl.resolver.Streams(param(c, "id"))
	if streams == nil {
		streams = []types.Stream{}
	}
	return c.JSON(types.StreamResponse{Streams: streams})
}
