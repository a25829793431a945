package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchup-insight/external/apifootball"
	"github.com/riskibarqy/matchup-insight/internal/config"
	"github.com/riskibarqy/matchup-insight/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchup-insight/internal/platform/logging"
	"github.com/riskibarqy/matchup-insight/internal/platform/resilience"
	"github.com/riskibarqy/matchup-insight/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func NewFootballClient(cfg config.Config, logger *logging.Logger) *apifootball.Client {
	return apifootball.NewClient(apifootball.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.APIFootballTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:    cfg.APIFootballBaseURL,
		APIKey:     cfg.APIFootballKey,
		Season:     cfg.APIFootballSeason,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMax,
		},
	})
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	return NewHTTPServerWithProvider(cfg, NewFootballClient(cfg, logger), logger)
}

// NewHTTPServerWithProvider wires the services around an arbitrary fixture
// source.
func NewHTTPServerWithProvider(cfg config.Config, provider usecase.FixtureProvider, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	renderer, err := httpapi.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	fetcher := usecase.NewFixtureFetcher(provider, logger.Named("fetcher"))
	statsSvc := usecase.NewStatsService(fetcher)
	analysisSvc := usecase.NewAnalysisService(statsSvc, fetcher, usecase.AnalysisServiceConfig{
		ParallelFetch: cfg.AnalysisParallelFetch,
	}, logger.Named("analysis"))

	handler := httpapi.NewHandler(analysisSvc, statsSvc, renderer, cfg.APIFootballSeason, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger.Named("http"), httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
