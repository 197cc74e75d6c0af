package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cardtable/game"
)

// Client looks card names up against a Scryfall-compatible API. The
// tabletop only needs identity data (name, image, oracle text, type
// line); everything else about a card lives in the player's head.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Delay between requests, per the API's rate-limit guideline.
	Delay time.Duration
}

// NewClient returns a client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Delay:   100 * time.Millisecond,
	}
}

type searchResponse struct {
	Data []struct {
		Name       string `json:"name"`
		OracleText string `json:"oracle_text"`
		TypeLine   string `json:"type_line"`
		ImageURIs  struct {
			Normal string `json:"normal"`
		} `json:"image_uris"`
		CardFaces []struct {
			ImageURIs struct {
				Normal string `json:"normal"`
			} `json:"image_uris"`
		} `json:"card_faces"`
	} `json:"data"`
}

// lookup fetches the oldest printing of an exact card name. A 404 means
// the name simply does not exist and is not an error for the caller.
func (c *Client) lookup(ctx context.Context, name string) (game.CardInstance, bool, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("!%q", name))
	q.Set("unique", "prints")
	q.Set("order", "released")
	q.Set("dir", "asc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/cards/search?"+q.Encode(), nil)
	if err != nil {
		return game.CardInstance{}, false, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return game.CardInstance{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return game.CardInstance{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return game.CardInstance{}, false, fmt.Errorf("card search for %q: status %d", name, resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return game.CardInstance{}, false, fmt.Errorf("decode card search for %q: %w", name, err)
	}
	if len(sr.Data) == 0 {
		return game.CardInstance{}, false, nil
	}

	card := sr.Data[0]
	image := card.ImageURIs.Normal
	if image == "" && len(card.CardFaces) > 0 {
		image = card.CardFaces[0].ImageURIs.Normal
	}

	return game.CardInstance{
		Name:       card.Name,
		ImageURL:   image,
		OracleText: card.OracleText,
		TypeLine:   card.TypeLine,
	}, true, nil
}

// Resolve looks up every unique name in entries and reports the data it
// found, keyed by lowercased name. Names the database does not know are
// skipped; only transport-level failures return an error.
func (c *Client) Resolve(ctx context.Context, entries []Entry) (map[string]game.CardInstance, error) {
	found := make(map[string]game.CardInstance)
	seen := make(map[string]bool)

	for _, e := range entries {
		key := lowerName(e.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		card, ok, err := c.lookup(ctx, e.Name)
		if err != nil {
			return nil, err
		}
		if ok {
			found[key] = card
		}

		if c.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.Delay):
			}
		}
	}

	return found, nil
}

// Build expands entries into one CardInstance per physical copy using
// previously resolved data. Names missing from resolved are returned so
// the caller can tell the player.
func Build(entries []Entry, resolved map[string]game.CardInstance) (cards []game.CardInstance, notFound []string) {
	for _, e := range entries {
		data, ok := resolved[lowerName(e.Name)]
		if !ok {
			notFound = append(notFound, e.Name)
			continue
		}
		for i := 0; i < e.Count; i++ {
			cards = append(cards, data)
		}
	}
	return cards, notFound
}

func lowerName(name string) string {
	return strings.ToLower(name)
}
