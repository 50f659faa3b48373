package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/oyunradar/esports-radar/internal/domain/source"
	"github.com/oyunradar/esports-radar/internal/domain/team"
	"github.com/oyunradar/esports-radar/internal/platform/cache"
	"github.com/oyunradar/esports-radar/internal/platform/logging"
)

const teamsCacheKey = "teams:snapshot"

// TeamService mirrors MatchService for team rosters. Teams keep their
// source order, duplicates across providers included, because the same
// organization fields different rosters per game.
type TeamService struct {
	scrapers []Scraper
	store    *cache.Store
	seed     func() []team.Team
	logger   *logging.Logger
}

func NewTeamService(scrapers []Scraper, ttl time.Duration, seed func() []team.Team, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	if seed == nil {
		seed = func() []team.Team { return nil }
	}

	return &TeamService{
		scrapers: scrapers,
		store:    cache.NewStore(ttl),
		seed:     seed,
		logger:   logger,
	}
}

// List returns the aggregated team snapshot narrowed by filter.
func (s *TeamService) List(ctx context.Context, filter TeamFilter) []team.Team {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	return FilterTeams(s.snapshot(ctx), filter)
}

// GetByID resolves one team, using the id namespace to scope a cold
// cache lookup to the owning scraper.
func (s *TeamService) GetByID(ctx context.Context, id string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	if items, ok := s.cachedSnapshot(ctx); ok {
		if found, ok := findTeam(items, id); ok {
			return found, nil
		}
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, id)
	}

	if src, ok := source.FromTeamID(id); ok {
		if scraper := s.scraperFor(src); scraper != nil {
			items, err := scraper.FetchTeams(ctx)
			if err != nil {
				s.logger.WarnContext(ctx, "scoped team fetch failed", "source", src, "error", err)
			}
			if found, ok := findTeam(items, id); ok {
				return found, nil
			}
		}
	}

	if found, ok := findTeam(s.snapshot(ctx), id); ok {
		return found, nil
	}
	return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, id)
}

func (s *TeamService) snapshot(ctx context.Context) []team.Team {
	value, err := s.store.GetOrLoad(ctx, teamsCacheKey, func(ctx context.Context) (any, error) {
		return s.refresh(ctx), nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "load team snapshot failed", "error", err)
		return s.seed()
	}

	items, ok := value.([]team.Team)
	if !ok {
		return s.seed()
	}
	return items
}

func (s *TeamService) cachedSnapshot(ctx context.Context) ([]team.Team, bool) {
	value, ok := s.store.Get(ctx, teamsCacheKey)
	if !ok {
		return nil, false
	}
	items, ok := value.([]team.Team)
	return items, ok
}

func (s *TeamService) refresh(ctx context.Context) []team.Team {
	if len(s.scrapers) == 0 {
		return s.seed()
	}

	results := make([][]team.Team, len(s.scrapers))
	pool, err := ants.NewPool(len(s.scrapers))
	if err != nil {
		s.logger.ErrorContext(ctx, "create scraper pool failed", "error", err)
		return s.seed()
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, scraper := range s.scrapers {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			items, err := scraper.FetchTeams(ctx)
			if err != nil {
				s.logger.WarnContext(ctx, "fetch teams failed", "source", scraper.Source(), "error", err)
				return
			}
			results[i] = items
		}); err != nil {
			workers.Done()
			s.logger.WarnContext(ctx, "submit scraper task failed", "source", scraper.Source(), "error", err)
		}
	}

	workers.Wait()

	merged := make([]team.Team, 0, 64)
	for _, items := range results {
		merged = append(merged, items...)
	}
	if len(merged) == 0 {
		s.logger.WarnContext(ctx, "all team sources empty, serving seed data")
		merged = s.seed()
	}
	return merged
}

func (s *TeamService) scraperFor(src string) Scraper {
	for _, scraper := range s.scrapers {
		if scraper.Source() == src {
			return scraper
		}
	}
	return nil
}

func findTeam(items []team.Team, id string) (team.Team, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return team.Team{}, false
}
