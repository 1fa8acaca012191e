package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public OpenLibrary search endpoint
const DefaultBaseURL = "https://openlibrary.org"

// maxResults caps how many search hits are relayed to the caller
const maxResults = 10

// Doc is a single OpenLibrary search result
type Doc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	CoverID          int64    `json:"cover_i"`
	FirstPublishYear int      `json:"first_publish_year"`
}

// CoverURL returns the medium-size cover image URL for the doc, or an
// empty string when no cover is available
func (d Doc) CoverURL() string {
	if d.CoverID == 0 {
		return ""
	}
	return fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-M.jpg", d.CoverID)
}

type searchResponse struct {
	Docs []Doc `json:"docs"`
}

// Client queries the OpenLibrary search API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the public OpenLibrary endpoint
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom endpoint
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// SearchByTitle forwards a title query and returns up to 10 results.
// A failed or malformed upstream response is an error; an empty result
// list is not.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]Doc, error) {
	endpoint := c.baseURL + "/search.json?title=" + url.QueryEscape(title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("book search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("book search returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode book search response: %w", err)
	}

	docs := result.Docs
	if len(docs) > maxResults {
		docs = docs[:maxResults]
	}

	return docs, nil
}
