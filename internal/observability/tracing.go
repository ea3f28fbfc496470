package observability

import (
	"context"

	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

func startTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("uptrace disabled")
		return nil, nil
	case cfg.UptraceDSN == "":
		logger.Warn("uptrace enabled without a DSN, tracing stays off")
		return nil, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	logger.Info("uptrace enabled", "service_version", cfg.ServiceVersion)

	return uptrace.Shutdown, nil
}
