package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/Fauzanmhr/zannime-stremio/internal/provider/zannime"
	"github.com/Fauzanmhr/zannime-stremio/internal/types"
)

// newApp mirrors the route table of cmd/zannime.
func newApp(ctrl *BaseController) *fiber.App {
	app := fiber.New()
	app.Get("/manifest.json", ctrl.Manifest)
	app.Get("/catalog/:type/:id.json", ctrl.Catalog)
	app.Get("/catalog/:type/:id/:extra.json", ctrl.Catalog)
	app.Get("/meta/:type/:id.json", ctrl.Meta)
	app.Get("/stream/:type/:id.json", ctrl.Stream)
	return app
}

func getJSON(app *fiber.App, path string, out interface{}) error {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func fakeUpstream() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/view-data":
			fmt.Fprint(w, `{"ok":true,"data":[{"route":"/anix","title":"Anix"}]}`)
		case "/anix/genres":
			fmt.Fprint(w, `{"ok":true,"data":["Action","Comedy"]}`)
		case "/anix/ongoing":
			fmt.Fprint(w, `{"ok":true,"data":[{"id":"one-piece","title":"One Piece"},{"id":"frieren","title":"Frieren"}]}`)
		case "/anix/anime/one-piece":
			fmt.Fprint(w, `{"ok":true,"data":{"id":"one-piece","title":"One Piece","released":"1999"}}`)
		case "/anix/schedule":
			fmt.Fprint(w, `{"ok":true,"data":[{"day":"Sunday","animeList":[{"id":"one-piece"}]}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestManifestDerivation(t *testing.T) {
	Convey("Given an upstream advertising one source", t, func() {
		srv := fakeUpstream()
		defer srv.Close()
		client := zannime.NewClient(srv.URL)

		sources := LoadSources(client)
		app := newApp(NewBaseController(client, sources))

		Convey("the manifest advertises three catalogs for it", func() {
			var manifest types.Manifest
			So(getJSON(app, "/manifest.json", &manifest), ShouldBeNil)

			So(manifest.Catalogs, ShouldHaveLength, 3)
			So(manifest.Catalogs[0].ID, ShouldEqual, "anix-anime-ongoing")
			So(manifest.Catalogs[1].ID, ShouldEqual, "anix-anime-completed")
			So(manifest.Catalogs[2].ID, ShouldEqual, "anix-anime-recent")
			So(manifest.IDPrefixes, ShouldResemble, []string{"anix:"})
		})

		Convey("the genre extra carries the source's genre options", func() {
			var manifest types.Manifest
			So(getJSON(app, "/manifest.json", &manifest), ShouldBeNil)

			extras := manifest.Catalogs[0].Extra
			So(extras, ShouldHaveLength, 3)
			So(extras[1].Name, ShouldEqual, "genre")
			So(extras[1].Options, ShouldResemble, []string{"Action", "Comedy"})
			So(extras[2].Name, ShouldEqual, "skip")
		})
	})

	Convey("Given an upstream whose source listing fails", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()
		client := zannime.NewClient(srv.URL)

		Convey("the addon starts with an empty registry", func() {
			sources := LoadSources(client)
			So(sources, ShouldBeEmpty)

			var manifest types.Manifest
			app := newApp(NewBaseController(client, sources))
			So(getJSON(app, "/manifest.json", &manifest), ShouldBeNil)
			So(manifest.Catalogs, ShouldBeEmpty)
		})
	})
}

func TestCatalogHandler(t *testing.T) {
	Convey("Given a controller over the fake upstream", t, func() {
		srv := fakeUpstream()
		defer srv.Close()
		client := zannime.NewClient(srv.URL)
		app := newApp(NewBaseController(client, LoadSources(client)))

		Convey("a known catalog id returns normalized metas", func() {
			var resp types.CatalogResponse
			So(getJSON(app, "/catalog/series/anix-anime-ongoing.json", &resp), ShouldBeNil)

			So(resp.Metas, ShouldHaveLength, 2)
			So(resp.Metas[0].ID, ShouldEqual, "anix:one-piece")
			So(resp.Metas[0].Type, ShouldEqual, "series")
		})

		Convey("an id that does not match the catalog pattern yields empty metas", func() {
			var resp types.CatalogResponse
			So(getJSON(app, "/catalog/series/garbage.json", &resp), ShouldBeNil)
			So(resp.Metas, ShouldBeEmpty)
		})

		Convey("an unknown source yields empty metas", func() {
			var resp types.CatalogResponse
			So(getJSON(app, "/catalog/series/other-anime-ongoing.json", &resp), ShouldBeNil)
			So(resp.Metas, ShouldBeEmpty)
		})

		Convey("an upstream failure degrades to empty metas, not an error status", func() {
			var resp types.CatalogResponse
			// The fake upstream 404s /anix/completed; a first-page 404 is a hard
			// failure inside the engine and must still surface as empty metas.
			So(getJSON(app, "/catalog/series/anix-anime-completed.json", &resp), ShouldBeNil)
			So(resp.Metas, ShouldBeEmpty)
		})
	})
}

func TestMetaAndStreamHandlers(t *testing.T) {
	Convey("Given a controller over the fake upstream", t, func() {
		srv := fakeUpstream()
		defer srv.Close()
		client := zannime.NewClient(srv.URL)
		app := newApp(NewBaseController(client, LoadSources(client)))

		Convey("a known item id returns the aggregated meta", func() {
			var resp types.MetaResponse
			So(getJSON(app, "/meta/series/anix:one-piece.json", &resp), ShouldBeNil)

			So(resp.Meta, ShouldNotBeNil)
			So(resp.Meta.Name, ShouldEqual, "One Piece")
			So(resp.Meta.ReleaseInfo, ShouldEqual, "1999 | Airs on Sunday")
		})

		Convey("a malformed item id yields a null meta", func() {
			var resp types.MetaResponse
			So(getJSON(app, "/meta/series/noseparator.json", &resp), ShouldBeNil)
			So(resp.Meta, ShouldBeNil)
		})

		Convey("an unknown source yields a null meta", func() {
			var resp types.MetaResponse
			So(getJSON(app, "/meta/series/other:one-piece.json", &resp), ShouldBeNil)
			So(resp.Meta, ShouldBeNil)
		})

		Convey("a failing episode fetch yields an empty stream list", func() {
			var resp types.StreamResponse
			So(getJSON(app, "/stream/series/anix:one-piece:ep-1.json", &resp), ShouldBeNil)
			So(resp.Streams, ShouldNotBeNil)
			So(resp.Streams, ShouldBeEmpty)
		})
	})
}
