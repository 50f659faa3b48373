package usecase

import (
	"context"

	"github.com/oyunradar/esports-radar/internal/domain/match"
	"github.com/oyunradar/esports-radar/internal/domain/team"
)

// Scraper is one upstream provider adapter. Implementations translate
// provider payloads into the canonical model and skip records they
// cannot make sense of instead of failing the whole batch.
type Scraper interface {
	Source() string
	FetchMatches(ctx context.Context) ([]match.Match, error)
	FetchTeams(ctx context.Context) ([]team.Team, error)
}
