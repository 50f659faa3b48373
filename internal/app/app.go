package app

import (
	"fmt"
	"net/http"

	"github.com/oyunradar/esports-radar/external/hltv"
	"github.com/oyunradar/esports-radar/external/vlr"
	"github.com/oyunradar/esports-radar/internal/config"
	"github.com/oyunradar/esports-radar/internal/infrastructure/seed"
	"github.com/oyunradar/esports-radar/internal/interfaces/httpapi"
	"github.com/oyunradar/esports-radar/internal/platform/logging"
	"github.com/oyunradar/esports-radar/internal/platform/resilience"
	"github.com/oyunradar/esports-radar/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	breakerCfg := resilience.CircuitBreakerConfig{
		Enabled:          cfg.ScraperCircuitEnabled,
		FailureThreshold: cfg.ScraperCircuitFailureCount,
		OpenTimeout:      cfg.ScraperCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.ScraperCircuitHalfOpenMaxReq,
	}

	scrapers := buildScrapers(cfg, breakerCfg, logger)
	if len(scrapers) == 0 {
		logger.Warn("no scrapers enabled, serving seed data only")
	}

	matchSvc := usecase.NewMatchService(scrapers, cfg.MatchCacheTTL, seed.Matches, logger)
	teamSvc := usecase.NewTeamService(scrapers, cfg.TeamCacheTTL, seed.Teams, logger)

	handler := httpapi.NewHandler(matchSvc, teamSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// buildScrapers keeps the configured order: results are concatenated
// source by source downstream, so the order here is user visible.
func buildScrapers(cfg config.Config, breakerCfg resilience.CircuitBreakerConfig, logger *logging.Logger) []usecase.Scraper {
	scrapers := make([]usecase.Scraper, 0, 2)

	if cfg.VLREnabled {
		scrapers = append(scrapers, vlr.NewClient(vlr.ClientConfig{
			BaseURL:        cfg.VLRBaseURL,
			Timeout:        cfg.ScraperTimeout,
			MaxRetries:     cfg.ScraperMaxRetries,
			TeamsLimit:     cfg.VLRTeamsLimit,
			Logger:         logger,
			CircuitBreaker: breakerCfg,
		}))
	}

	if cfg.HLTVEnabled {
		scrapers = append(scrapers, hltv.NewClient(hltv.ClientConfig{
			BaseURL:        cfg.HLTVBaseURL,
			Timeout:        cfg.ScraperTimeout,
			Logger:         logger,
			CircuitBreaker: breakerCfg,
		}))
	}

	return scrapers
}
