package zannime

import "encoding/json"

// envelope is the wrapper every upstream response uses.
type envelope struct {
	OK         bool            `json:"ok"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

// Pagination is the optional paging metadata attached to list responses.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
}

// SourceInfo is one entry of the /view-data source listing.
type SourceInfo struct {
	Route string `json:"route"`
	Title string `json:"title"`
}

// Anime is the raw upstream record for both catalog entries and the detail
// endpoint. The upstream omits most fields on catalog entries.
type Anime struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Genres      []string       `json:"genres"`
	Released    string         `json:"released"`
	Status      string         `json:"status"`
	Type        string         `json:"type"`
	Score       float64        `json:"score"`
	Duration    string         `json:"duration"`
	Episodes    []EpisodeEntry `json:"episodes"`
}

// EpisodeEntry is one row of a detail record's episode list.
type EpisodeEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ScheduleDay is one weekday of the airing schedule.
type ScheduleDay struct {
	Day       string          `json:"day"`
	AnimeList []ScheduleAnime `json:"animeList"`
}

type ScheduleAnime struct {
	ID string `json:"id"`
}

// EpisodeSources is the quality/server tree the episode endpoint returns.
// URL, when set, is a directly playable default stream.
type EpisodeSources struct {
	URL       string    `json:"url"`
	Qualities []Quality `json:"qualities"`
}

type Quality struct {
	Title      string   `json:"title"`
	ServerList []Server `json:"serverList"`
}

type Server struct {
	ID    string `json:"serverId"`
	Title string `json:"title"`
}

// CatalogPage is one upstream page of catalog items plus its paging metadata
// when the upstream supplied any.
type CatalogPage struct {
	Items      []Anime
	Pagination *Pagination
}
