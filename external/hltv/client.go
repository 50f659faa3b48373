package hltv

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasthttp"

	"github.com/oyunradar/esports-radar/internal/domain/match"
	"github.com/oyunradar/esports-radar/internal/domain/source"
	"github.com/oyunradar/esports-radar/internal/domain/team"
	"github.com/oyunradar/esports-radar/internal/platform/logging"
	"github.com/oyunradar/esports-radar/internal/platform/resilience"
	"github.com/oyunradar/esports-radar/internal/usecase"
)

const (
	defaultBaseURL = "https://hltv-api.vercel.app/api"
	webRoot        = "https://www.hltv.org"
	brandColor     = "#de9b35"
	game           = "cs2"
	defaultTier    = "A-Tier"
)

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client scrapes the community HLTV API. The match feed is the only
// listing it exposes, so team rosters are distilled from the matches
// themselves.
type Client struct {
	client         *fasthttp.Client
	baseURL        string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	validate       *validator.Validate
	now            func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		client: &fasthttp.Client{
			MaxConnsPerHost:     64,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL:        baseURL,
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		validate:       validator.New(),
		now:            time.Now,
	}
}

func (c *Client) Source() string {
	return source.HLTV
}

// FetchMatches pulls the match feed. The feed only flags live matches,
// everything else is upcoming.
func (c *Client) FetchMatches(ctx context.Context) ([]match.Match, error) {
	feed, err := c.fetchFeed(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(feed))
	skipped := 0
	for _, raw := range feed {
		mapped, ok := c.mapMatch(raw)
		if !ok {
			skipped++
			continue
		}
		out = append(out, mapped)
	}
	if skipped > 0 {
		c.logger.DebugContext(ctx, "skipped malformed hltv matches", "count", skipped)
	}

	return out, nil
}

// FetchTeams derives the team listing from the match feed, first
// occurrence wins on duplicates.
func (c *Client) FetchTeams(ctx context.Context) ([]team.Team, error) {
	feed, err := c.fetchFeed(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(feed)*2)
	out := make([]team.Team, 0, len(feed)*2)
	for _, raw := range feed {
		for _, ref := range raw.Teams {
			mapped, ok := c.mapTeam(ref)
			if !ok {
				continue
			}
			if _, dup := seen[mapped.ID]; dup {
				continue
			}
			seen[mapped.ID] = struct{}{}
			out = append(out, mapped)
		}
	}

	return out, nil
}

func (c *Client) fetchFeed(ctx context.Context) ([]rawMatch, error) {
	raw, err := c.doRequest(ctx, "/matches.json")
	if err != nil {
		return nil, fmt.Errorf("fetch hltv matches: %w", err)
	}

	var feed []rawMatch
	if err := sonic.Unmarshal(raw, &feed); err != nil {
		return nil, fmt.Errorf("decode hltv payload: %w", err)
	}
	return feed, nil
}

func (c *Client) mapMatch(raw rawMatch) (match.Match, bool) {
	if string(raw.ID) == "" || len(raw.Teams) < 2 {
		return match.Match{}, false
	}
	if string(raw.Teams[0].ID) == "" || string(raw.Teams[1].ID) == "" {
		return match.Match{}, false
	}

	startTime := c.now().UTC()
	if parsed := parseUpstreamTime(string(raw.Time)); parsed != nil {
		startTime = *parsed
	}

	status := match.StatusUpcoming
	if raw.Live {
		status = match.StatusLive
	}

	format := strings.TrimSpace(raw.Format)
	if format == "" {
		format = "Bo3"
	}

	mapped := match.Match{
		ID:         source.MatchID(source.HLTV, string(raw.ID)),
		Platform:   source.HLTV,
		Game:       game,
		Status:     status,
		StartTime:  startTime,
		Team1:      c.mapSide(raw.Teams[0]),
		Team2:      c.mapSide(raw.Teams[1]),
		Tournament: mapEvent(raw.Event),
		Format:     format,
	}
	if mapped.Team1.Team.ID == mapped.Team2.Team.ID {
		return match.Match{}, false
	}
	if err := c.validate.Struct(mapped); err != nil {
		return match.Match{}, false
	}

	return mapped, true
}

func (c *Client) mapSide(raw rawTeamRef) match.Side {
	mapped, _ := c.mapTeam(raw)
	return match.Side{Team: mapped}
}

func (c *Client) mapTeam(raw rawTeamRef) (team.Team, bool) {
	name := strings.TrimSpace(raw.Name)
	if string(raw.ID) == "" {
		return team.Team{}, false
	}
	if name == "" {
		name = "TBD"
	}

	return team.Team{
		ID:         source.TeamID(source.HLTV, string(raw.ID)),
		Name:       name,
		ShortName:  team.DeriveShortName("", name),
		Logo:       source.NormalizeAssetURL(raw.Logo, webRoot),
		Region:     "International",
		Game:       game,
		Platform:   source.HLTV,
		BrandColor: brandColor,
	}, true
}

func mapEvent(raw rawEvent) *match.Tournament {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil
	}

	upstreamID := string(raw.ID)
	if upstreamID == "" {
		upstreamID = "unknown"
	}

	return &match.Tournament{
		ID:   source.TournamentID(source.HLTV, upstreamID),
		Name: name,
		Tier: defaultTier,
	}
}

func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "hltv circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: hltv feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullURL := c.baseURL + path
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		c.logger.WarnContext(ctx, "hltv request failed", "url", fullURL, "error", err)
		return nil, fmt.Errorf("send request: %w", err)
	}

	if code := resp.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("feed status=%d body=%s", code, abbreviateBody(resp.Body()))
	}

	// The response body is pooled with the fasthttp response object.
	raw := make([]byte, len(resp.Body()))
	copy(raw, resp.Body())
	return raw, nil
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func parseUpstreamTime(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			v := parsed.UTC()
			return &v
		}
	}
	return nil
}
