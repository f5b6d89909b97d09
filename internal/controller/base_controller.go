package controller

import (
	log "github.com/sirupsen/logrus"

	"github.com/Fauzanmhr/zannime-stremio/internal/extractor"
	"github.com/Fauzanmhr/zannime-stremio/internal/provider/zannime"
	"github.com/Fauzanmhr/zannime-stremio/internal/types"
)

// BaseController holds the upstream client and the read-only source registry
// the request handlers dispatch on.
type BaseController struct {
	client   *zannime.Client
	resolver *extractor.Resolver
	sources  []types.Source
	manifest types.Manifest
}

func NewBaseController(client *zannime.Client, sources []types.Source) *BaseController {
	return &BaseController{
		client:   client,
		resolver: extractor.NewResolver(client),
		sources:  sources,
		manifest: buildManifest(sources),
	}
}

// LoadSources builds the source registry from the upstream listing call,
// enriching each source with its genre list for the manifest filter options.
// A listing failure degrades to an empty registry so the addon still starts.
func LoadSources(client *zannime.Client) []types.Source {
	infos, err := client.Sources()
	if err != nil {
		log.WithError(err).Warn("source listing failed, advertising no catalogs")
		return nil
	}

	sources := make([]types.Source, 0, len(infos))
	for _, info := range infos {
		source := types.NewSource(info.Route, info.Title)
		genres, err := client.Genres(source.Route)
		if err != nil {
			log.WithError(err).WithField("source", source.Route).
				Debug("genre listing failed, catalog filter will have no options")
		} else {
			source.Genres = genres
		}
		sources = append(sources, source)
	}
	return sources
}
