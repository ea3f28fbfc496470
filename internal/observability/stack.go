// Package observability wires tracing and profiling for the API process.
package observability

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

type stopFunc struct {
	name string
	stop func(context.Context) error
}

// Stack holds whatever Start brought up so it can be torn down in reverse.
type Stack struct {
	logger *logging.Logger
	stops  []stopFunc
}

// Start enables each backend the config asks for. On error, anything
// already started is stopped before returning.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{logger: logger}

	starters := []struct {
		name  string
		start func(config.Config, *logging.Logger) (func(context.Context) error, error)
	}{
		{"uptrace", startTracing},
		{"pyroscope", startProfiler},
		{"pprof", startPprof},
	}
	for _, st := range starters {
		stop, err := st.start(cfg, logger)
		if err != nil {
			return nil, errors.CombineErrors(errors.Wrapf(err, "start %s", st.name), s.Shutdown(ctx))
		}
		if stop != nil {
			s.stops = append(s.stops, stopFunc{name: st.name, stop: stop})
		}
	}
	return s, nil
}

// Running lists the started backends in start order.
func (s *Stack) Running() []string {
	names := make([]string, 0, len(s.stops))
	for _, st := range s.stops {
		names = append(names, st.name)
	}
	return names
}

func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	var combined error
	for i := len(s.stops) - 1; i >= 0; i-- {
		st := s.stops[i]
		if err := st.stop(ctx); err != nil {
			combined = errors.CombineErrors(combined, errors.Wrapf(err, "stop %s", st.name))
			continue
		}
		s.logger.Info("observability backend stopped", "backend", st.name)
	}
	s.stops = nil
	return combined
}
