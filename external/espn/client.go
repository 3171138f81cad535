package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/weekly-pot/internal/platform/cache"
	"github.com/riskibarqy/weekly-pot/internal/platform/logging"
	"github.com/riskibarqy/weekly-pot/internal/platform/resilience"
	"github.com/riskibarqy/weekly-pot/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL      = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
	defaultTimeout      = 20 * time.Second
	maxResponseBytes    = 6 << 20
	maxErrorBodyPreview = 240
)

var errESPNTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	LeagueID       int64
	SeasonID       int
	EspnS2         string
	SWID           string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Cache          *cache.Store[[]byte]
}

type Client struct {
	httpClient     *http.Client
	leagueURL      string
	espnS2         string
	swid           string
	retry          resilience.RetryPolicy
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	cache          *cache.Store[[]byte]
	publicOnce     sync.Once
}

var _ usecase.LeagueProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	store := cfg.Cache
	if store == nil {
		store = cache.NewStore[[]byte]()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		leagueURL:      fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", baseURL, cfg.SeasonID, cfg.LeagueID),
		espnS2:         strings.TrimSpace(cfg.EspnS2),
		swid:           normalizeSWID(cfg.SWID),
		retry:          resilience.NormalizeRetryPolicy(resilience.RetryPolicy{MaxRetries: cfg.MaxRetries, Backoff: cfg.RetryBackoff}),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
		cache:          store,
	}
}

// normalizeSWID strips the braces ESPN wraps around the SWID cookie value.
func normalizeSWID(raw string) string {
	value := strings.TrimSpace(raw)
	if strings.HasPrefix(value, "{") && strings.HasSuffix(value, "}") {
		value = value[1 : len(value)-1]
	}
	return value
}

func (c *Client) authenticated() bool {
	return c.espnS2 != "" && c.swid != ""
}

// FetchLeague loads league settings, status, members and teams.
func (c *Client) FetchLeague(ctx context.Context) (usecase.ExternalLeague, error) {
	env, err := c.league(ctx)
	if err != nil {
		return usecase.ExternalLeague{}, err
	}
	return mapLeague(env), nil
}

// FetchWeek loads the scoreboard of one matchup period. Team and owner names
// come from the memoized league payload.
func (c *Client) FetchWeek(ctx context.Context, week int) ([]usecase.ExternalMatchup, error) {
	if week < 1 {
		return nil, fmt.Errorf("%w: week must be >= 1, got %d", usecase.ErrInvalidInput, week)
	}

	env, err := c.league(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Add("view", "mMatchupScore")
	query.Add("view", "mScoreboard")
	query.Set("scoringPeriodId", strconv.Itoa(week))

	var board scoreboardEnvelope
	if _, err := c.doJSON(ctx, query, &board); err != nil {
		return nil, fmt.Errorf("fetch scoreboard week=%d: %w", week, err)
	}

	return mapWeek(env, board, week), nil
}

func (c *Client) league(ctx context.Context) (leagueEnvelope, error) {
	query := url.Values{}
	query.Add("view", "mTeam")
	query.Add("view", "mSettings")
	query.Add("view", "mStatus")

	var env leagueEnvelope
	if _, err := c.doJSON(ctx, query, &env); err != nil {
		return leagueEnvelope{}, fmt.Errorf("fetch league: %w", err)
	}
	return env, nil
}

// doJSON issues one GET per distinct query per run; repeated queries are
// served from the cache.
func (c *Client) doJSON(ctx context.Context, query url.Values, target any) ([]byte, error) {
	if !c.authenticated() {
		c.publicOnce.Do(func() {
			c.logger.WarnContext(ctx, "ESPN_S2/SWID not set, using public league access")
		})
	}

	fullURL := c.leagueURL
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.cache.GetOrLoad(ctx, fullURL, func(ctx context.Context) ([]byte, error) {
		if c.circuitEnabled {
			if err := c.awaitBreaker(ctx); err != nil {
				return nil, err
			}
		}

		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isTransient(reqErr) {
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

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode espn payload: %w", err)
	}
	return raw, nil
}

// awaitBreaker lets a request through a closed circuit. An open circuit is
// waited out so the request becomes the half-open probe; later weeks are
// still fetched after a run of failures.
func (c *Client) awaitBreaker(ctx context.Context) error {
	if c.breaker.Allow() == nil {
		return nil
	}

	wait := c.breaker.ProbeAfter()
	c.logger.WarnContext(ctx, "espn circuit breaker open, waiting to probe", "wait", wait.String())
	timer := time.NewTimer(wait)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
	}

	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", c.breaker.State())
		return fmt.Errorf("%w: league data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var raw []byte
	err := resilience.Retry(ctx, c.retry, isTransient, func(attempt int) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if c.authenticated() {
			req.Header.Set("Cookie", "espn_s2="+c.espnS2+"; SWID={"+c.swid+"}")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return crerr.Mark(crerr.Newf("send request: %s", c.sanitize(err.Error())), errESPNTransient)
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
		if readErr != nil {
			return crerr.Mark(crerr.Newf("read response body: %s", c.sanitize(readErr.Error())), errESPNTransient)
		}

		if statusErr := classifyStatus(resp.StatusCode, body); statusErr != nil {
			if attempt < c.retry.MaxRetries && isTransient(statusErr) {
				c.logger.DebugContext(ctx, "retrying espn request", "attempt", attempt+1, "status", resp.StatusCode)
			}
			return statusErr
		}
		raw = body
		return nil
	})
	if err != nil {
		if ctx.Err() == nil {
			c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", err)
		}
		return nil, err
	}
	return raw, nil
}

func classifyStatus(code int, body []byte) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: espn status=%d, league is private or credentials are invalid", usecase.ErrUnauthorized, code)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: espn status=%d body=%s", usecase.ErrNotFound, code, abbreviateBody(body))
	case isRetryableStatus(code):
		return crerr.Mark(crerr.Newf("espn status=%d body=%s", code, abbreviateBody(body)), errESPNTransient)
	default:
		return crerr.Newf("espn status=%d body=%s", code, abbreviateBody(body))
	}
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	for _, secret := range []string{c.espnS2, c.swid} {
		if secret != "" {
			value = strings.ReplaceAll(value, secret, "REDACTED")
		}
	}
	return value
}

func isTransient(err error) bool {
	return err != nil && crerr.Is(err, errESPNTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// abbreviateBody keeps at most maxErrorBodyPreview bytes, cut on a rune
// boundary.
func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxErrorBodyPreview {
		return text
	}
	cut := maxErrorBodyPreview
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
