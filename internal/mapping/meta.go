// Package mapping reshapes raw upstream records into the platform's fixed
// metadata schema and merges the independently fetched airing schedule into
// the detail record.
package mapping

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/Fauzanmhr/zannime-stremio/internal/identifier"
	"github.com/Fauzanmhr/zannime-stremio/internal/provider/zannime"
	"github.com/Fauzanmhr/zannime-stremio/internal/types"
)

// Meta normalizes one upstream anime record into the platform's metadata
// shape. Catalog entries and detail records share the same raw shape; fields
// the upstream omitted stay empty.
func Meta(source types.Source, anime zannime.Anime) types.Meta {
	meta := types.Meta{
		ID:          identifier.Encode(source.Route, anime.ID),
		Type:        "series",
		Name:        anime.Title,
		Poster:      anime.Image,
		Description: stripHTML(anime.Description),
		Genres:      anime.Genres,
		ReleaseInfo: releaseInfo(anime),
		Runtime:     anime.Duration,
	}
	if anime.Score > 0 {
		meta.IMDBRating = fmt.Sprintf("%.1f", anime.Score)
	}
	if len(anime.Episodes) > 0 {
		meta.Videos = videos(source, anime.ID, anime.Episodes)
	}
	return meta
}

// GetMeta is the full detail aggregation: the detail fetch is fatal, the
// schedule fetch degrades to an unenriched record.
func GetMeta(client *zannime.Client, source types.Source, animeID string) (*types.Meta, error) {
	anime, err := client.Anime(source.Route, animeID)
	if err != nil {
		return nil, fmt.Errorf("fetch anime %s/%s: %w", source.Route, animeID, err)
	}
	meta := Meta(source, *anime)

	schedule, err := client.Schedule(source.Route)
	if err != nil {
		log.WithError(err).WithField("source", source.Route).
			Warn("schedule unavailable, returning meta without airing day")
		return &meta, nil
	}
	meta.ReleaseInfo = AppendAiringDay(meta.ReleaseInfo, animeID, schedule)
	return &meta, nil
}

// releaseInfo joins the record's non-empty informational fragments with the
// pipe separator the rest of the pipeline appends to.
func releaseInfo(anime zannime.Anime) string {
	fragments := lo.Filter([]string{anime.Released, anime.Status}, func(s string, _ int) bool {
		return s != ""
	})
	return strings.Join(fragments, " | ")
}

// videos maps the episode list to platform video entries, ordered by the
// episode number parsed from each title.
func videos(source types.Source, animeID string, entries []zannime.EpisodeEntry) []types.Video {
	itemID := identifier.Encode(source.Route, animeID)
	result := lo.Map(entries, func(e zannime.EpisodeEntry, _ int) types.Video {
		return types.Video{
			ID:      itemID + ":" + e.ID,
			Title:   e.Title,
			Episode: episodeNumber(e.Title),
			Season:  1,
		}
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Episode < result[j].Episode
	})
	return result
}

// episodeNumber parses the numeric episode out of a title such as
// "Episode 12". Unparseable titles sort first as episode 0.
func episodeNumber(title string) int {
	trimmed := strings.TrimSpace(strings.ReplaceAll(title, "Episode", ""))
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return n
}

// stripHTML flattens upstream descriptions that arrive with embedded markup.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}
