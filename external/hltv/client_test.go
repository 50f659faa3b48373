package hltv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oyunradar/esports-radar/internal/domain/match"
	"github.com/oyunradar/esports-radar/internal/platform/logging"
)

const feedFixture = `[
  {
    "id": 2371001,
    "time": "2025-06-10T18:00:00Z",
    "live": true,
    "format": "bo3",
    "event": {"id": 7500, "name": "IEM Cologne 2025"},
    "teams": [
      {"id": 4608, "name": "Natus Vincere", "logo": "//img-cdn.hltv.org/navi.png"},
      {"id": 6667, "name": "FaZe", "logo": "/img/faze.png"}
    ]
  },
  {
    "id": 2371002,
    "time": "2025-06-12T12:30:00Z",
    "live": false,
    "event": {"id": 7500, "name": "IEM Cologne 2025"},
    "teams": [
      {"id": 5995, "name": "G2"},
      {"id": 4608, "name": "Natus Vincere"}
    ]
  },
  {
    "id": 2371003,
    "live": false,
    "teams": [
      {"id": 9565, "name": "Vitality"}
    ]
  }
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		Logger:  logging.NewNop(),
	})
}

func TestFetchMatches_MapsFeed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/matches.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedFixture))
	})

	matches, err := client.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("FetchMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches after skipping the one-team record, got %d", len(matches))
	}

	live := matches[0]
	if live.ID != "hltv-2371001" {
		t.Fatalf("unexpected match id %q", live.ID)
	}
	if live.Platform != "hltv" || live.Game != "cs2" {
		t.Fatalf("unexpected platform/game %q/%q", live.Platform, live.Game)
	}
	if live.Status != match.StatusLive {
		t.Fatalf("unexpected status %q", live.Status)
	}
	if want := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC); !live.StartTime.Equal(want) {
		t.Fatalf("unexpected start time %v", live.StartTime)
	}
	if live.Format != "bo3" {
		t.Fatalf("unexpected format %q", live.Format)
	}
	if live.Team1.Team.ID != "team-hltv-4608" {
		t.Fatalf("unexpected team id %q", live.Team1.Team.ID)
	}
	if live.Team1.Team.Logo != "https://img-cdn.hltv.org/navi.png" {
		t.Fatalf("protocol-relative logo not normalized: %q", live.Team1.Team.Logo)
	}
	if live.Team2.Team.Logo != "https://www.hltv.org/img/faze.png" {
		t.Fatalf("relative logo not normalized: %q", live.Team2.Team.Logo)
	}
	if live.Tournament == nil || live.Tournament.ID != "tournament-hltv-7500" || live.Tournament.Tier != "A-Tier" {
		t.Fatalf("unexpected tournament %+v", live.Tournament)
	}

	upcoming := matches[1]
	if upcoming.Status != match.StatusUpcoming {
		t.Fatalf("unexpected status %q", upcoming.Status)
	}
	if upcoming.Tournament == nil || upcoming.Tournament.Name != "IEM Cologne 2025" {
		t.Fatalf("unexpected tournament %+v", upcoming.Tournament)
	}
	if upcoming.Format != "Bo3" {
		t.Fatalf("missing format fallback: %q", upcoming.Format)
	}
}

func TestFetchTeams_DeduplicatesAcrossMatches(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedFixture))
	})

	teams, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("FetchTeams: %v", err)
	}

	// NaVi appears in two matches, Vitality's one-team match still
	// contributes its roster entry.
	ids := make(map[string]int, len(teams))
	for _, item := range teams {
		ids[item.ID]++
	}
	if ids["team-hltv-4608"] != 1 {
		t.Fatalf("expected one NaVi entry, got %d", ids["team-hltv-4608"])
	}
	if len(teams) != 4 {
		t.Fatalf("expected 4 unique teams, got %d", len(teams))
	}
	for _, item := range teams {
		if item.Platform != "hltv" || item.Game != "cs2" || item.BrandColor != "#de9b35" {
			t.Fatalf("unexpected team branding %+v", item)
		}
	}
}

func TestFetchMatches_FeedFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	if _, err := client.FetchMatches(context.Background()); err == nil {
		t.Fatal("expected error on upstream failure")
	}
}
