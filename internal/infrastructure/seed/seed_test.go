package seed

import (
	"testing"
	"time"

	"github.com/oyunradar/esports-radar/internal/domain/match"
)

func TestTeams_UniqueIDs(t *testing.T) {
	t.Parallel()

	teams := Teams()
	if len(teams) == 0 {
		t.Fatal("seed teams must not be empty")
	}

	seen := make(map[string]struct{}, len(teams))
	for _, item := range teams {
		if item.ID == "" || item.Name == "" || item.Game == "" || item.Platform == "" {
			t.Fatalf("incomplete seed team %+v", item)
		}
		if _, dup := seen[item.ID]; dup {
			t.Fatalf("duplicate seed team id %q", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
}

func TestMatches_RelativeSchedule(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	matches := Matches(now)
	if len(matches) == 0 {
		t.Fatal("seed matches must not be empty")
	}

	seen := make(map[string]struct{}, len(matches))
	for _, item := range matches {
		if _, dup := seen[item.ID]; dup {
			t.Fatalf("duplicate seed match id %q", item.ID)
		}
		seen[item.ID] = struct{}{}

		if item.Team1.Team.ID == "" || item.Team2.Team.ID == "" {
			t.Fatalf("match %s has an unresolved team reference", item.ID)
		}
		if item.Team1.Team.ID == item.Team2.Team.ID {
			t.Fatalf("match %s pits a team against itself", item.ID)
		}

		switch item.Status {
		case match.StatusLive:
			if !item.StartTime.Before(now) {
				t.Fatalf("live match %s must have started already", item.ID)
			}
			if item.CurrentMap == nil {
				t.Fatalf("live match %s is missing current map info", item.ID)
			}
		case match.StatusUpcoming:
			if !item.StartTime.After(now) {
				t.Fatalf("upcoming match %s must start in the future", item.ID)
			}
		case match.StatusCompleted:
			if item.EndTime == nil || !item.EndTime.After(item.StartTime) {
				t.Fatalf("completed match %s needs a valid end time", item.ID)
			}
			if !item.Team1.IsWinner && !item.Team2.IsWinner {
				t.Fatalf("completed match %s has no winner", item.ID)
			}
		}
	}
}
