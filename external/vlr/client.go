package vlr

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/oyunradar/esports-radar/internal/domain/match"
	"github.com/oyunradar/esports-radar/internal/domain/source"
	"github.com/oyunradar/esports-radar/internal/domain/team"
	"github.com/oyunradar/esports-radar/internal/platform/logging"
	"github.com/oyunradar/esports-radar/internal/platform/resilience"
	"github.com/oyunradar/esports-radar/internal/usecase"
)

const (
	defaultBaseURL    = "https://vlr.orlandomm.net/api/v1"
	webRoot           = "https://www.vlr.gg"
	brandColor        = "#ff4654"
	game              = "valorant"
	defaultTeamsLimit = 50
	defaultFormat     = "Bo3"
	fallbackEventName = "VCT Tournament"
)

var errVLRTransient = crerr.New("vlr transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	TeamsLimit     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client scrapes the community VLR.gg API and maps its payloads onto
// the canonical model.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	teamsLimit     int
	maxRetries     int
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

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	teamsLimit := cfg.TeamsLimit
	if teamsLimit <= 0 {
		teamsLimit = defaultTeamsLimit
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		teamsLimit:     teamsLimit,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		validate:       validator.New(),
		now:            time.Now,
	}
}

func (c *Client) Source() string {
	return source.VLR
}

// FetchMatches pulls the combined upcoming and live match feed. Records
// missing both teams or an id are skipped, never surfaced as errors.
func (c *Client) FetchMatches(ctx context.Context) ([]match.Match, error) {
	var envelope matchesEnvelope
	if err := c.doJSON(ctx, "/matches", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch vlr matches: %w", err)
	}

	out := make([]match.Match, 0, 32)
	skipped := 0
	for _, segment := range envelope.segments() {
		for _, raw := range segment.Matches {
			mapped, ok := c.mapMatch(raw)
			if !ok {
				skipped++
				continue
			}
			out = append(out, mapped)
		}
	}
	if skipped > 0 {
		c.logger.DebugContext(ctx, "skipped malformed vlr matches", "count", skipped)
	}

	return out, nil
}

// FetchTeams pulls the ranked team listing. The feed is ordered by rank
// but omits the number itself, so position backfills it.
func (c *Client) FetchTeams(ctx context.Context) ([]team.Team, error) {
	query := map[string]string{"limit": fmt.Sprintf("%d", c.teamsLimit)}

	var envelope teamsEnvelope
	if err := c.doJSON(ctx, "/teams", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch vlr teams: %w", err)
	}

	out := make([]team.Team, 0, len(envelope.Data))
	skipped := 0
	for i, raw := range envelope.Data {
		mapped, ok := c.mapTeam(raw, i+1)
		if !ok {
			skipped++
			continue
		}
		out = append(out, mapped)
	}
	if skipped > 0 {
		c.logger.DebugContext(ctx, "skipped malformed vlr teams", "count", skipped)
	}

	return out, nil
}

func (c *Client) mapMatch(raw rawMatch) (match.Match, bool) {
	if string(raw.ID) == "" || len(raw.Teams) < 2 {
		return match.Match{}, false
	}
	if string(raw.Teams[0].ID) == "" || string(raw.Teams[1].ID) == "" {
		return match.Match{}, false
	}

	startTime := c.now().UTC()
	if parsed := parseUpstreamTime(string(raw.Date)); parsed != nil {
		startTime = *parsed
	}

	status := match.StatusUpcoming
	switch strings.ToLower(strings.TrimSpace(raw.State)) {
	case "live":
		status = match.StatusLive
	case "completed":
		status = match.StatusCompleted
	}

	mapped := match.Match{
		ID:         source.MatchID(source.VLR, string(raw.ID)),
		Platform:   source.VLR,
		Game:       game,
		Status:     status,
		StartTime:  startTime,
		Team1:      c.mapSide(raw.Teams[0]),
		Team2:      c.mapSide(raw.Teams[1]),
		Tournament: mapTournament(raw.Tournament, raw.Event),
		Format:     defaultFormat,
	}
	if status == match.StatusCompleted {
		if mapped.Team1.Score > mapped.Team2.Score {
			mapped.Team1.IsWinner = true
		} else if mapped.Team2.Score > mapped.Team1.Score {
			mapped.Team2.IsWinner = true
		}
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
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = "TBD"
	}

	return match.Side{
		Team: team.Team{
			ID:         source.TeamID(source.VLR, string(raw.ID)),
			Name:       name,
			ShortName:  team.DeriveShortName(raw.Code, name),
			Logo:       source.NormalizeAssetURL(raw.Img, webRoot),
			Country:    strings.TrimSpace(raw.Country),
			Game:       game,
			Platform:   source.VLR,
			BrandColor: brandColor,
		},
		Score: int(raw.Score),
	}
}

func (c *Client) mapTeam(raw rawTeam, position int) (team.Team, bool) {
	name := strings.TrimSpace(raw.Name)
	if string(raw.ID) == "" || name == "" {
		return team.Team{}, false
	}

	region := strings.TrimSpace(raw.Country)
	if region == "" {
		region = "International"
	}

	mapped := team.Team{
		ID:         source.TeamID(source.VLR, string(raw.ID)),
		Name:       name,
		ShortName:  team.DeriveShortName("", name),
		Logo:       source.NormalizeAssetURL(raw.Img, webRoot),
		Country:    strings.TrimSpace(raw.Country),
		Region:     region,
		Game:       game,
		Platform:   source.VLR,
		Ranking:    position,
		BrandColor: brandColor,
	}
	if err := c.validate.Struct(mapped); err != nil {
		return team.Team{}, false
	}

	return mapped, true
}

func mapTournament(primary rawTournament, fallback rawTournament) *match.Tournament {
	chosen := primary
	if strings.TrimSpace(chosen.Name) == "" {
		chosen = fallback
	}

	upstreamID := string(chosen.ID)
	if upstreamID == "" {
		upstreamID = "unknown"
	}
	name := strings.TrimSpace(chosen.Name)
	if name == "" {
		name = fallbackEventName
	}

	return &match.Tournament{
		ID:   source.TournamentID(source.VLR, upstreamID),
		Name: name,
	}
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "vlr circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: vlr feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errVLRTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode vlr payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errVLRTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errVLRTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errVLRTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("vlr request failed")
	}
	c.logger.WarnContext(ctx, "vlr request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
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
		"2006-01-02",
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

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
