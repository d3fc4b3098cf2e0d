package assistant

import loggerpkg "github.com/minhyannv/hello-ai-go/pkg/logger"

// Option configures optional runtime dependencies for Assistant and Runner.
type Option func(*deps)

type deps struct {
	logger loggerpkg.Logger
	turnID func() string
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *deps) {
		d.logger = l
	}
}

// WithTurnIDs replaces the generator used to tag turns in debug logs.
func WithTurnIDs(next func() string) Option {
	return func(d *deps) {
		d.turnID = next
	}
}

func applyOptions(opts []Option) deps {
	d := deps{}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	d.logger = loggerpkg.OrNop(d.logger)
	return d
}
