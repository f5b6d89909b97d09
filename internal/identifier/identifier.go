// Package identifier encodes and decodes the composite ids the addon hands
// to the platform: "source:animeId" for items and "source:animeId:episodeId"
// for videos.
package identifier

import (
	"fmt"
	"strings"
)

const sep = ":"

// FormatError reports a composite id that cannot be split into its parts.
type FormatError struct {
	ID string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed composite id %q", e.ID)
}

// ItemID identifies one anime within a source namespace.
type ItemID struct {
	Source  string
	AnimeID string
}

// VideoID identifies one episode of an item.
type VideoID struct {
	Source    string
	AnimeID   string
	EpisodeID string
}

// Encode joins source and anime id. Neither part may contain ":"; the
// upstream ids are opaque slugs so no escaping is done.
func Encode(source, animeID string) string {
	return source + sep + animeID
}

// Decode splits an item id on the first ":".
func Decode(id string) (ItemID, error) {
	source, animeID, ok := strings.Cut(id, sep)
	if !ok {
		return ItemID{}, &FormatError{ID: id}
	}
	return ItemID{Source: source, AnimeID: animeID}, nil
}

// DecodeVideo splits a video id into exactly three parts. Any ":" beyond the
// second folds into the episode id, since some upstream episode slugs carry
// their own separators. Fewer than three parts is a format error; an empty
// third part is a valid id with an empty episode id.
func DecodeVideo(id string) (VideoID, error) {
	parts := strings.SplitN(id, sep, 3)
	if len(parts) < 3 {
		return VideoID{}, &FormatError{ID: id}
	}
	return VideoID{Source: parts[0], AnimeID: parts[1], EpisodeID: parts[2]}, nil
}
