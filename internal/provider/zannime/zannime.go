// Package zannime is the client for the upstream anime-listing API. Every
// endpoint responds with an {ok, message, data, pagination} envelope; ok:false
// or malformed JSON is an EnvelopeError, a non-2xx status a StatusError.
package zannime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d for %s", e.Code, e.URL)
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	se, ok := err.(*StatusError)
	return ok && se.Code == http.StatusNotFound
}

// EnvelopeError reports an upstream response whose envelope could not be
// decoded or carried ok:false.
type EnvelopeError struct {
	Message string
}

func (e *EnvelopeError) Error() string {
	return "upstream envelope error: " + e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// get fetches path with query, checks status and envelope, and returns the
// decoded envelope.
func (c *Client) get(path string, query url.Values) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	resp, err := c.http.Get(u)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: u}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &EnvelopeError{Message: err.Error()}
	}
	if !env.OK {
		msg := env.Message
		if msg == "" {
			msg = "ok flag not set"
		}
		return nil, &EnvelopeError{Message: msg}
	}
	return &env, nil
}

// Sources lists the catalog namespaces the upstream aggregates.
func (c *Client) Sources() ([]SourceInfo, error) {
	env, err := c.get("/view-data", nil)
	if err != nil {
		return nil, err
	}
	var sources []SourceInfo
	if err := json.Unmarshal(env.Data, &sources); err != nil {
		return nil, &EnvelopeError{Message: err.Error()}
	}
	return sources, nil
}

// Genres lists the genre filter values a source supports.
func (c *Client) Genres(source string) ([]string, error) {
	env, err := c.get("/"+source+"/genres", nil)
	if err != nil {
		return nil, err
	}
	var genres []string
	if err := json.Unmarshal(env.Data, &genres); err != nil {
		return nil, &EnvelopeError{Message: err.Error()}
	}
	return genres, nil
}

// Schedule fetches the weekly airing schedule of a source.
func (c *Client) Schedule(source string) ([]ScheduleDay, error) {
	env, err := c.get("/"+source+"/schedule", nil)
	if err != nil {
		return nil, err
	}
	var days []ScheduleDay
	if err := json.Unmarshal(env.Data, &days); err != nil {
		return nil, &EnvelopeError{Message: err.Error()}
	}
	return days, nil
}

// Page fetches one catalog page. path is relative to the source, e.g.
// "ongoing", "search" or "genres/Action". page <= 1 omits the page parameter,
// matching how the upstream treats its first page.
func (c *Client) Page(source, path string, query url.Values, page int) (CatalogPage, error) {
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	if page > 1 {
		q.Set("page", fmt.Sprint(page))
	}

	env, err := c.get("/"+source+"/"+path, q)
	if err != nil {
		return CatalogPage{}, err
	}
	return CatalogPage{Items: itemList(env.Data), Pagination: env.Pagination}, nil
}

// Anime fetches the detail record of one anime.
func (c *Client) Anime(source, id string) (*Anime, error) {
	env, err := c.get("/"+source+"/anime/"+id, nil)
	if err != nil {
		return nil, err
	}
	var anime Anime
	if err := json.Unmarshal(env.Data, &anime); err != nil {
		return nil, &EnvelopeError{Message: err.Error()}
	}
	return &anime, nil
}

// Episode fetches the quality/server tree of one episode.
func (c *Client) Episode(source, id string) (*EpisodeSources, error) {
	env, err := c.get("/"+source+"/episode/"+id, nil)
	if err != nil {
		return nil, err
	}
	var sources EpisodeSources
	if err := json.Unmarshal(env.Data, &sources); err != nil {
		return nil, &EnvelopeError{Message: err.Error()}
	}
	return &sources, nil
}

// Server resolves one streaming server to its final playable URL.
func (c *Client) Server(source, id string) (string, error) {
	env, err := c.get("/"+source+"/server/"+id, nil)
	if err != nil {
		return "", err
	}
	var resolved struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(env.Data, &resolved); err != nil {
		return "", &EnvelopeError{Message: err.Error()}
	}
	if resolved.URL == "" {
		return "", &EnvelopeError{Message: "server response carried no url"}
	}
	return resolved.URL, nil
}

// itemList extracts catalog items from the envelope data, which the upstream
// places either directly as an array or under an animeList key depending on
// the source. Anything else is an empty page.
func itemList(data json.RawMessage) []Anime {
	var items []Anime
	if err := json.Unmarshal(data, &items); err == nil {
		return items
	}
	var nested struct {
		AnimeList []Anime `json:"animeList"`
	}
	if err := json.Unmarshal(data, &nested); err == nil {
		return nested.AnimeList
	}
	return nil
}
