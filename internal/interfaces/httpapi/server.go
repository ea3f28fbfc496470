package httpapi

import (
	"net/http"

	"github.com/riskibarqy/courtside/internal/platform/logging"
)

// RouterOptions toggles the optional parts of the HTTP surface.
type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerTeamRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)

	return RequestTracing(chain(mux,
		RequestLogging(logger),
		CORS(opts.CORSAllowedOrigins),
		RecoverPanic(logger),
	))
}
