package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
	"github.com/riskibarqy/matchup-insight/internal/platform/logging"
	"github.com/riskibarqy/matchup-insight/internal/platform/resilience"
	"github.com/riskibarqy/matchup-insight/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL   = "https://v3.football.api-sports.io"
	defaultSeason    = 2023
	apiKeyHeader     = "x-apisports-key"
	maxResponseBytes = 6 << 20
)

var (
	ErrUnexpectedStatus = crerr.New("api-football unexpected status")
	ErrMalformedPayload = crerr.New("api-football malformed payload")
	ErrProviderReported = crerr.New("api-football reported errors")

	errTransient = crerr.New("api-football transient failure")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Season         int
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the API-Football v3 fixtures endpoints for one season.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	season     int
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
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
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	season := cfg.Season
	if season <= 0 {
		season = defaultSeason
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		season:     season,
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger.Named("apifootball"),
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

// FetchTeamFixtures lists every fixture the team played in the configured season.
func (c *Client) FetchTeamFixtures(ctx context.Context, teamID int64) ([]fixture.Fixture, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("team", strconv.FormatInt(teamID, 10))
	query.Set("season", strconv.Itoa(c.season))

	var env fixturesEnvelope
	if err := c.doJSON(ctx, "/fixtures", query, &env); err != nil {
		return nil, crerr.Wrapf(err, "fetch fixtures team_id=%d season=%d", teamID, c.season)
	}
	return mapFixtures(env.Response), nil
}

// FetchHeadToHead lists fixtures between the two teams in the configured
// season, in provider order.
func (c *Client) FetchHeadToHead(ctx context.Context, team1ID, team2ID int64) ([]fixture.Fixture, error) {
	if team1ID <= 0 || team2ID <= 0 {
		return nil, fmt.Errorf("%w: team ids must be greater than zero", usecase.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("h2h", fmt.Sprintf("%d-%d", team1ID, team2ID))
	query.Set("season", strconv.Itoa(c.season))

	var env fixturesEnvelope
	if err := c.doJSON(ctx, "/fixtures/headtohead", query, &env); err != nil {
		return nil, crerr.Wrapf(err, "fetch head-to-head h2h=%d-%d season=%d", team1ID, team2ID, c.season)
	}
	return mapFixtures(env.Response), nil
}

func (c *Client) doJSON(ctx context.Context, path string, query url.Values, target *fixturesEnvelope) error {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// Only the flight leader takes a breaker slot, so every Allow is paired
	// with exactly one Record.
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return nil, fmt.Errorf("%w: api-football is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		raw, reqErr := c.executeRequest(ctx, fullURL)
		c.breaker.Record(reqErr, isTransient)
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
		return fmt.Errorf("%w: decode body=%s: %v", ErrMalformedPayload, abbreviateBody(raw), err)
	}
	if messages := providerErrorMessages(target.Errors); len(messages) > 0 {
		return fmt.Errorf("%w: %s", ErrProviderReported, c.sanitize(strings.Join(messages, "; ")))
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
		req.Header.Set(apiKeyHeader, c.apiKey)

		raw, status, err := c.send(req)
		switch {
		case err != nil:
			lastErr = fmt.Errorf("%w: %s", errTransient, c.sanitize(err.Error()))
		case status == http.StatusOK:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = fmt.Errorf("%w: %w: provider status=%d body=%s", ErrUnexpectedStatus, errTransient, status, abbreviateBody(raw))
		default:
			lastErr = fmt.Errorf("%w: provider status=%d body=%s", ErrUnexpectedStatus, status, abbreviateBody(raw))
			c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "status", status, "error", lastErr)
			return nil, lastErr
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

	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func (c *Client) send(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	raw := make([]byte, buf.Len())
	copy(raw, buf.B)
	return raw, resp.StatusCode, nil
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.apiKey != "" {
		value = strings.ReplaceAll(value, c.apiKey, "REDACTED")
	}
	return value
}

func isTransient(err error) bool {
	return crerr.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 120 {
		return text
	}
	return text[:120] + "..."
}
