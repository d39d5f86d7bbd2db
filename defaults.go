package shortcode

// withDefaults fills unset Options: wall clock, no logging, no hooks.
func withDefaults(opts Options) Options {
	opts.Clock = coalesce[Clock](opts.Clock, SystemClock{})
	opts.Logger = coalesce[Logger](opts.Logger, NopLogger{})
	opts.Hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return opts
}

// coalesce picks def for a nil interface option. A non-nil value holding an
// uncomparable type (ClockFunc) never equals the nil zero, so it is safe here.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
