package lapgo

type options struct {
	logger *Logger
	rcond  float64
}

// Option configures reusable workspace construction.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. logger-carrying constructor variants).
type Option func(*options)

func defaultOptions() options {
	return options{
		logger: NoopLogger(),
		rcond:  -1,
	}
}

// WithLogger configures the logger used to report workspace negotiation at
// debug level. Pass nil to keep the default no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithRankThreshold configures the singular value cutoff used by the
// least-squares solver when estimating rank: singular values s(i) <=
// rcond*s(1) are treated as zero.
//
// A negative value (the default) selects machine precision.
func WithRankThreshold(rcond float64) Option {
	return func(o *options) {
		o.rcond = rcond
	}
}
