package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	log "github.com/sirupsen/logrus"

	"github.com/Fauzanmhr/zannime-stremio/internal/config"
	"github.com/Fauzanmhr/zannime-stremio/internal/controller"
	"github.com/Fauzanmhr/zannime-stremio/internal/provider/zannime"
)

func main() {
	config.Setup()

	upstreamURL := config.UpstreamURL()
	if upstreamURL == "" {
		log.Fatal("ZANNIME_UPSTREAM_URL is required")
	}

	client := zannime.NewClient(upstreamURL)
	sources := controller.LoadSources(client)
	log.WithField("sources", len(sources)).Info("loaded upstream sources")

	ctrl := controller.NewBaseController(client, sources)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	app.Get("/manifest.json", ctrl.Manifest)
	app.Get("/catalog/:type/:id.json", ctrl.Catalog)
	app.Get("/catalog/:type/:id/:extra.json", ctrl.Catalog)
	app.Get("/meta/:type/:id.json", ctrl.Meta)
	app.Get("/stream/:type/:id.json", ctrl.Stream)

	log.Fatal(app.Listen(":" + config.Port()))
}
