package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client proxies venue lookups to the Places API. The key lives server-side
// only; handlers forward results without ever exposing it.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type SearchResult struct {
	PlaceID        string  `json:"place_id"`
	Name           string  `json:"name"`
	Address        string  `json:"formatted_address"`
	Rating         float64 `json:"rating"`
	PhotoReference string  `json:"photo_reference,omitempty"`
}

type searchResponse struct {
	Results []struct {
		PlaceID          string  `json:"place_id"`
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	u := fmt.Sprintf("%s/textsearch/json?query=%s&key=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build places request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places search: unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}
	if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places search: %s", body.Status)
	}

	results := make([]SearchResult, 0, len(body.Results))
	for _, r := range body.Results {
		res := SearchResult{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Address: r.FormattedAddress,
			Rating:  r.Rating,
		}
		if len(r.Photos) > 0 {
			res.PhotoReference = r.Photos[0].PhotoReference
		}
		results = append(results, res)
	}
	return results, nil
}

// Photo streams a place photo. Returns the bytes and content type.
func (c *Client) Photo(ctx context.Context, photoReference string, maxWidth int) ([]byte, string, error) {
	u := fmt.Sprintf("%s/photo?photo_reference=%s&maxwidth=%d&key=%s",
		c.baseURL, url.QueryEscape(photoReference), maxWidth, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build photo request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("places photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("places photo: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, "", fmt.Errorf("read photo body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
