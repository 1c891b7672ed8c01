package pipeline

// Reporter receives anytime progress checkpoints from a driver: a new
// width was just proven or improved, and whether the result is still
// provisional (interim) or final. Drivers invoke Report at well-defined
// points (once after each connected component) rather than from inside a
// search's inner loop, so a caller-supplied Reporter never blocks a
// tight loop. A nil Reporter on Options disables reporting entirely.
type Reporter interface {
	Report(width int, interim bool)
}

// NoopReporter discards every report. Options with Reporter unset does
// not use it: the drivers then skip reporting altogether.
type NoopReporter struct{}

func (NoopReporter) Report(int, bool) {}
