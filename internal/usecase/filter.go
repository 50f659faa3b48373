package usecase

import (
	"sort"
	"strings"

	"github.com/oyunradar/esports-radar/internal/domain/match"
	"github.com/oyunradar/esports-radar/internal/domain/team"
)

// MatchFilter narrows a match listing. Empty fields and the literal
// "all" are no-ops, so any combination composes.
type MatchFilter struct {
	Platform string
	Game     string
	Status   string
	Search   string
	LiveOnly bool
}

// TeamFilter narrows a team listing.
type TeamFilter struct {
	Platform string
	Game     string
}

func FilterMatches(items []match.Match, filter MatchFilter) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		if !matchAccepted(item, filter) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchAccepted(item match.Match, filter MatchFilter) bool {
	if !fieldAccepted(item.Platform, filter.Platform) {
		return false
	}
	if !fieldAccepted(item.Game, filter.Game) {
		return false
	}
	if !fieldAccepted(string(item.Status), filter.Status) {
		return false
	}
	if filter.LiveOnly && item.Status != match.StatusLive {
		return false
	}
	if query := strings.ToLower(strings.TrimSpace(filter.Search)); query != "" {
		if !matchSearchable(item, query) {
			return false
		}
	}
	return true
}

func matchSearchable(item match.Match, query string) bool {
	if strings.Contains(strings.ToLower(item.Team1.Team.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Team2.Team.Name), query) {
		return true
	}
	if item.Tournament != nil && strings.Contains(strings.ToLower(item.Tournament.Name), query) {
		return true
	}
	return false
}

func FilterTeams(items []team.Team, filter TeamFilter) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		if !fieldAccepted(item.Platform, filter.Platform) {
			continue
		}
		if !fieldAccepted(item.Game, filter.Game) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func fieldAccepted(value, wanted string) bool {
	wanted = strings.ToLower(strings.TrimSpace(wanted))
	if wanted == "" || wanted == "all" {
		return true
	}
	return strings.EqualFold(value, wanted)
}

// SortMatchesForListing orders live matches first, then upcoming, then
// decided ones, with startTime and finally id breaking ties. The result
// is a fresh slice so cached snapshots stay untouched.
func SortMatchesForListing(items []match.Match) []match.Match {
	out := append([]match.Match(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		left, right := out[i], out[j]
		if lr, rr := left.Status.ListingRank(), right.Status.ListingRank(); lr != rr {
			return lr < rr
		}
		if !left.StartTime.Equal(right.StartTime) {
			return left.StartTime.Before(right.StartTime)
		}
		return left.ID < right.ID
	})
	return out
}
