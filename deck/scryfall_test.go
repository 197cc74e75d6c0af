package deck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL)
	c.Delay = 0
	return c
}

func TestResolve(t *testing.T) {
	var queries []string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		queries = append(queries, q)
		if strings.Contains(q, "Nonexistent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"data":[{"name":"Lightning Bolt","oracle_text":"Deal 3 damage.","type_line":"Instant","image_uris":{"normal":"https://img/bolt.jpg"}}]}`))
	})

	entries := []Entry{
		{4, "Lightning Bolt"},
		{2, "lightning bolt"}, // same card, different case: one lookup
		{1, "Nonexistent Card"},
	}
	resolved, err := c.Resolve(context.Background(), entries)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(queries) != 2 {
		t.Fatalf("made %d lookups, want 2 (unique names only)", len(queries))
	}
	card, ok := resolved["lightning bolt"]
	if !ok {
		t.Fatalf("bolt missing from %v", resolved)
	}
	if card.Name != "Lightning Bolt" || card.OracleText != "Deal 3 damage." || card.TypeLine != "Instant" || card.ImageURL != "https://img/bolt.jpg" {
		t.Fatalf("unexpected card: %+v", card)
	}
	if _, ok := resolved["nonexistent card"]; ok {
		t.Fatal("404 name resolved anyway")
	}
}

func TestResolveDoubleFacedImage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"name":"Delver of Secrets","type_line":"Creature","card_faces":[{"image_uris":{"normal":"https://img/front.jpg"}}]}]}`))
	})

	resolved, err := c.Resolve(context.Background(), []Entry{{4, "Delver of Secrets"}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := resolved["delver of secrets"].ImageURL; got != "https://img/front.jpg" {
		t.Fatalf("ImageURL = %q, want front face", got)
	}
}

func TestResolveServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := c.Resolve(context.Background(), []Entry{{1, "Anything"}}); err == nil {
		t.Fatal("expected an error on a 500")
	}
}

func TestBuild(t *testing.T) {
	resolved, err := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"name":"Island","type_line":"Basic Land"}]}`))
	}).Resolve(context.Background(), []Entry{{3, "Island"}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	cards, missing := Build([]Entry{{3, "Island"}, {2, "Unknown"}}, resolved)

	if len(cards) != 3 {
		t.Fatalf("built %d cards, want 3", len(cards))
	}
	for _, c := range cards {
		if c.Name != "Island" {
			t.Fatalf("unexpected card %+v", c)
		}
	}
	if len(missing) != 1 || missing[0] != "Unknown" {
		t.Fatalf("missing = %v, want [Unknown]", missing)
	}
}
