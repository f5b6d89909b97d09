// Package extractor resolves the playable sources of an episode: it expands
// the upstream's quality/server tree into one resolution call per server and
// collects the URLs that resolved, in upstream order.
package extractor

import (
	"net/url"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/Fauzanmhr/zannime-stremio/internal/identifier"
	"github.com/Fauzanmhr/zannime-stremio/internal/provider/zannime"
	"github.com/Fauzanmhr/zannime-stremio/internal/types"
)

// hostRewrites maps hosting providers whose share links are not directly
// playable to their direct-download path convention.
var hostRewrites = map[string]func(*url.URL){
	"pixeldrain.com": func(u *url.URL) {
		if id, ok := strings.CutPrefix(u.Path, "/u/"); ok {
			u.Path = "/api/file/" + id
		}
	},
}

type Resolver struct {
	client *zannime.Client
}

func NewResolver(client *zannime.Client) *Resolver {
	return &Resolver{client: client}
}

// Streams returns the playable candidates for a video id. Every failure along
// the way degrades: a malformed id or failed episode fetch yields an empty
// list, a failed server resolution skips that single candidate. The platform
// never sees an error from this path.
func (r *Resolver) Streams(videoID string) []types.Stream {
	id, err := identifier.DecodeVideo(videoID)
	if err != nil {
		log.WithError(err).Debug("stream request with malformed video id")
		return nil
	}
	if id.EpisodeID == "" {
		return nil
	}

	episode, err := r.client.Episode(id.Source, id.EpisodeID)
	if err != nil {
		log.WithError(err).WithField("episode", id.EpisodeID).
			Warn("episode fetch failed, returning no streams")
		return nil
	}

	var streams []types.Stream
	if episode.URL != "" {
		streams = append(streams, types.Stream{
			Name:  "Default",
			Title: "Default",
			URL:   rewriteURL(episode.URL),
		})
	}
	return append(streams, r.fanOut(id.Source, episode.Qualities)...)
}

// fanOut resolves every quality/server pair concurrently and collects the
// successes back into upstream quality-then-server order.
func (r *Resolver) fanOut(source string, qualities []zannime.Quality) []types.Stream {
	type pair struct {
		quality string
		server  zannime.Server
	}
	var pairs []pair
	for _, q := range qualities {
		for _, s := range q.ServerList {
			pairs = append(pairs, pair{quality: q.Title, server: s})
		}
	}

	resolved := make([]string, len(pairs))
	var wg sync.WaitGroup
	for i, p := range pairs {
		wg.Add(1)
		go func(i int, p pair) {
			defer wg.Done()
			u, err := r.client.Server(source, p.server.ID)
			if err != nil {
				log.WithError(err).WithFields(log.Fields{
					"quality": p.quality,
					"server":  p.server.Title,
				}).Debug("server resolution failed, skipping candidate")
				return
			}
			resolved[i] = rewriteURL(u)
		}(i, p)
	}
	wg.Wait()

	var streams []types.Stream
	for i, p := range pairs {
		if resolved[i] == "" {
			continue
		}
		streams = append(streams, types.Stream{
			Name:  p.quality + " [" + p.server.Title + "]",
			Title: p.quality + " - " + p.server.Title,
			URL:   resolved[i],
		})
	}
	return streams
}

// rewriteURL applies the direct-download rewrite of a known hosting provider,
// matched case-insensitively on the host. Unknown hosts pass through.
func rewriteURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	for host, rewrite := range hostRewrites {
		if strings.EqualFold(u.Hostname(), host) {
			rewrite(u)
			break
		}
	}
	return u.String()
}
