package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyunradar/esports-radar/internal/domain/match"
	"github.com/oyunradar/esports-radar/internal/domain/team"
)

func buildMatch(id, platform, game string, status match.Status, start time.Time, team1, team2, tournament string) match.Match {
	return match.Match{
		ID:        id,
		Platform:  platform,
		Game:      game,
		Status:    status,
		StartTime: start,
		Team1:     match.Side{Team: team.Team{ID: "team-" + id + "-1", Name: team1, Game: game, Platform: platform}},
		Team2:     match.Side{Team: team.Team{ID: "team-" + id + "-2", Name: team2, Game: game, Platform: platform}},
		Tournament: &match.Tournament{
			ID:   "tournament-" + id,
			Name: tournament,
		},
	}
}

func fixtureMatches() []match.Match {
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	return []match.Match{
		buildMatch("vlr-1", "vlr", "valorant", match.StatusUpcoming, base.Add(2*time.Hour), "FUT Esports", "Fnatic", "VCT EMEA League"),
		buildMatch("hltv-1", "hltv", "cs2", match.StatusLive, base, "NaVi", "FaZe", "BLAST Premier"),
		buildMatch("vlr-2", "vlr", "valorant", match.StatusLive, base.Add(-time.Hour), "Sentinels", "Cloud9", "VCT Americas League"),
		buildMatch("hltv-2", "hltv", "cs2", match.StatusCompleted, base.Add(-5*time.Hour), "G2 Esports", "Vitality", "IEM Cologne"),
	}
}

func TestFilterMatches_Composes(t *testing.T) {
	t.Parallel()

	items := fixtureMatches()

	got := FilterMatches(items, MatchFilter{Platform: "hltv", Status: "live"})
	require.Len(t, got, 1)
	assert.Equal(t, "hltv-1", got[0].ID)

	// Filter order must not matter: one pass with both fields equals
	// sequential application.
	sequential := FilterMatches(FilterMatches(items, MatchFilter{Status: "live"}), MatchFilter{Platform: "hltv"})
	assert.Equal(t, got, sequential)
}

func TestFilterMatches_AllAndEmptyAreNoops(t *testing.T) {
	t.Parallel()

	items := fixtureMatches()

	assert.Len(t, FilterMatches(items, MatchFilter{}), len(items))
	assert.Len(t, FilterMatches(items, MatchFilter{Platform: "all", Game: "all", Status: "all"}), len(items))
}

func TestFilterMatches_Search(t *testing.T) {
	t.Parallel()

	items := fixtureMatches()

	byTeam := FilterMatches(items, MatchFilter{Search: "navi"})
	require.Len(t, byTeam, 1)
	assert.Equal(t, "hltv-1", byTeam[0].ID)

	byTournament := FilterMatches(items, MatchFilter{Search: "vct"})
	assert.Len(t, byTournament, 2)

	assert.Empty(t, FilterMatches(items, MatchFilter{Search: "no such thing"}))
}

func TestFilterMatches_LiveOnly(t *testing.T) {
	t.Parallel()

	got := FilterMatches(fixtureMatches(), MatchFilter{LiveOnly: true})
	require.Len(t, got, 2)
	for _, item := range got {
		assert.Equal(t, match.StatusLive, item.Status)
	}
}

func TestSortMatchesForListing(t *testing.T) {
	t.Parallel()

	items := fixtureMatches()
	sorted := SortMatchesForListing(items)

	ids := make([]string, 0, len(sorted))
	for _, item := range sorted {
		ids = append(ids, item.ID)
	}
	// Live first ordered by start time, then upcoming, then completed.
	assert.Equal(t, []string{"vlr-2", "hltv-1", "vlr-1", "hltv-2"}, ids)

	// Input order untouched.
	assert.Equal(t, "vlr-1", items[0].ID)
}

func TestSortMatchesForListing_TieBreaksByID(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	items := []match.Match{
		buildMatch("vlr-9", "vlr", "valorant", match.StatusUpcoming, start, "A", "B", "T"),
		buildMatch("hltv-9", "hltv", "cs2", match.StatusUpcoming, start, "C", "D", "T"),
	}

	sorted := SortMatchesForListing(items)
	assert.Equal(t, "hltv-9", sorted[0].ID)
	assert.Equal(t, "vlr-9", sorted[1].ID)
}

func TestFilterTeams(t *testing.T) {
	t.Parallel()

	items := []team.Team{
		{ID: "team-vlr-1", Name: "FUT", Game: "valorant", Platform: "vlr"},
		{ID: "team-hltv-1", Name: "NaVi", Game: "cs2", Platform: "hltv"},
		{ID: "team-hltv-2", Name: "FaZe", Game: "cs2", Platform: "hltv"},
	}

	got := FilterTeams(items, TeamFilter{Platform: "hltv"})
	require.Len(t, got, 2)

	got = FilterTeams(items, TeamFilter{Game: "valorant"})
	require.Len(t, got, 1)
	assert.Equal(t, "team-vlr-1", got[0].ID)

	assert.Len(t, FilterTeams(items, TeamFilter{Platform: "all"}), 3)
}
