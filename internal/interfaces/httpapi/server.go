package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchup-insight/internal/platform/logging"
)

type RouterConfig struct {
	ServiceName        string
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "matchup-insight"
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPageRoutes(mux, handler)
	registerAPIRoutes(mux, handler)

	return RequestTracing(cfg.ServiceName,
		RequestID(
			RequestLogging(logger,
				CORS(cfg.CORSAllowedOrigins,
					recoverPanic(logger, mux)))))
}
