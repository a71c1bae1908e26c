package chain

import "time"

// Logger receives dispatch events. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector receives one duration and one counter per dispatch,
// labelled with the originating node and the terminal state.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
}

const (
	metricDispatchDuration = "chain_dispatch_duration"
	metricDispatchTotal    = "chain_dispatch_total"
)

// Option configures a Node.
type Option func(*options) error

type options struct {
	logger  Logger
	metrics MetricsCollector
}

// WithLogger sets the logger used for dispatches that start at the node:
//
// Debug level: every handler call and end of chain
// Info level: done outcomes
// Warn level: aborted outcomes with their cause.
func WithLogger(logger Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithMetrics sets the collector for dispatches that start at the node.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) error {
		o.metrics = collector
		return nil
	}
}

func (o *options) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

func (o *options) report(origin string, out outcomeView) {
	if o.logger != nil {
		attrs := []any{"dispatch_id", out.id.String(), "origin", origin, "node", out.node, "duration_ms", out.duration.Milliseconds()}
		switch out.state {
		case Done:
			o.logger.Info("chain: done", attrs...)
		case Aborted:
			o.logger.Warn("chain: aborted", append(attrs, "error", out.err)...)
		default:
			o.logger.Debug("chain: end of chain", attrs...)
		}
	}

	if o.metrics != nil {
		labels := map[string]string{"node": origin, "state": out.state.String()}
		o.metrics.RecordDuration(metricDispatchDuration, out.duration, labels)
		o.metrics.IncrementCounter(metricDispatchTotal, labels)
	}
}
