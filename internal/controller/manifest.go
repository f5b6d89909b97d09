package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/Fauzanmhr/zannime-stremio/internal/types"
)

// catalogTypes is the fixed set of listings every source gets, in the order
// they appear in the manifest.
var catalogTypes = []struct {
	id   string
	name string
}{
	{"ongoing", "Ongoing"},
	{"completed", "Completed"},
	{"recent", "Recent"},
}

func (ctrl *BaseController) Manifest(c *fiber.Ctx) error {
	return c.JSON(ctrl.manifest)
}

func buildManifest(sources []types.Source) types.Manifest {
	catalogs := []types.ManifestCatalog{}
	for _, source := range sources {
		for _, ct := range catalogTypes {
			catalogs = append(catalogs, types.ManifestCatalog{
				Type: "series",
				ID:   source.ID + "-" + ct.id,
				Name: source.Name + " " + ct.name,
				Extra: []types.CatalogExtra{
					{Name: "search"},
					{Name: "genre", Options: source.Genres},
					{Name: "skip"},
				},
			})
		}
	}

	return types.Manifest{
		ID:          "com.fauzanmhr.zannime",
		Version:     "1.0.0",
		Name:        "Zannime",
		Description: "Anime catalogs, metadata and streams from the Zannime API",
		Types:       []string{"series"},
		Resources:   []string{"catalog", "meta", "stream"},
		Catalogs:    catalogs,
		IDPrefixes: lo.Map(sources, func(s types.Source, _ int) string {
			return s.IDPrefix()
		}),
	}
}
