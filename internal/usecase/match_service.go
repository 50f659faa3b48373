package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/oyunradar/esports-radar/internal/domain/match"
	"github.com/oyunradar/esports-radar/internal/domain/source"
	"github.com/oyunradar/esports-radar/internal/platform/cache"
	"github.com/oyunradar/esports-radar/internal/platform/logging"
)

const matchesCacheKey = "matches:snapshot"

// MatchService aggregates matches from every configured scraper behind
// a TTL snapshot. A snapshot build waits for all scrapers, folds per
// scraper failures into empty contributions and falls back to seed data
// when every source comes back empty, so listing never fails.
type MatchService struct {
	scrapers []Scraper
	store    *cache.Store
	seed     func(now time.Time) []match.Match
	logger   *logging.Logger
	now      func() time.Time
}

func NewMatchService(scrapers []Scraper, ttl time.Duration, seed func(time.Time) []match.Match, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if seed == nil {
		seed = func(time.Time) []match.Match { return nil }
	}

	return &MatchService{
		scrapers: scrapers,
		store:    cache.NewStore(ttl),
		seed:     seed,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns the aggregated snapshot narrowed by filter, ordered for
// display.
func (s *MatchService) List(ctx context.Context, filter MatchFilter) []match.Match {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	return SortMatchesForListing(FilterMatches(s.snapshot(ctx), filter))
}

// GetByID resolves one match. A namespace-prefixed id on a cold cache
// queries only the owning scraper instead of refreshing every source.
func (s *MatchService) GetByID(ctx context.Context, id string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByID")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if items, ok := s.cachedSnapshot(ctx); ok {
		if found, ok := findMatch(items, id); ok {
			return found, nil
		}
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, id)
	}

	if src, ok := source.FromMatchID(id); ok {
		if scraper := s.scraperFor(src); scraper != nil {
			items, err := scraper.FetchMatches(ctx)
			if err != nil {
				s.logger.WarnContext(ctx, "scoped match fetch failed", "source", src, "error", err)
			}
			if found, ok := findMatch(items, id); ok {
				return found, nil
			}
		}
	}

	if found, ok := findMatch(s.snapshot(ctx), id); ok {
		return found, nil
	}
	return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, id)
}

func (s *MatchService) snapshot(ctx context.Context) []match.Match {
	value, err := s.store.GetOrLoad(ctx, matchesCacheKey, func(ctx context.Context) (any, error) {
		return s.refresh(ctx), nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "load match snapshot failed", "error", err)
		return sortByStartTime(s.seed(s.now().UTC()))
	}

	items, ok := value.([]match.Match)
	if !ok {
		return sortByStartTime(s.seed(s.now().UTC()))
	}
	return items
}

func (s *MatchService) cachedSnapshot(ctx context.Context) ([]match.Match, bool) {
	value, ok := s.store.Get(ctx, matchesCacheKey)
	if !ok {
		return nil, false
	}
	items, ok := value.([]match.Match)
	return items, ok
}

func (s *MatchService) refresh(ctx context.Context) []match.Match {
	if len(s.scrapers) == 0 {
		return sortByStartTime(s.seed(s.now().UTC()))
	}

	// Indexed results keep the configured source order stable across runs.
	results := make([][]match.Match, len(s.scrapers))
	pool, err := ants.NewPool(len(s.scrapers))
	if err != nil {
		s.logger.ErrorContext(ctx, "create scraper pool failed", "error", err)
		return sortByStartTime(s.seed(s.now().UTC()))
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, scraper := range s.scrapers {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			items, err := scraper.FetchMatches(ctx)
			if err != nil {
				s.logger.WarnContext(ctx, "fetch matches failed", "source", scraper.Source(), "error", err)
				return
			}
			results[i] = items
		}); err != nil {
			workers.Done()
			s.logger.WarnContext(ctx, "submit scraper task failed", "source", scraper.Source(), "error", err)
		}
	}

	workers.Wait()

	merged := make([]match.Match, 0, 64)
	for _, items := range results {
		merged = append(merged, items...)
	}
	if len(merged) == 0 {
		s.logger.WarnContext(ctx, "all match sources empty, serving seed data")
		merged = s.seed(s.now().UTC())
	}

	return sortByStartTime(merged)
}

func (s *MatchService) scraperFor(src string) Scraper {
	for _, scraper := range s.scrapers {
		if scraper.Source() == src {
			return scraper
		}
	}
	return nil
}

func findMatch(items []match.Match, id string) (match.Match, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return match.Match{}, false
}

func sortByStartTime(items []match.Match) []match.Match {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartTime.Before(items[j].StartTime)
	})
	return items
}
