package cubeplan

import "time"

// MetricsObserver defines the interface for observing scheduler events.
type MetricsObserver interface {
	// OnBuild is called when a spanning tree build completes.
	OnBuild(duration time.Duration, cuboids int, padded int, err error)

	// OnBestMatch is called when a best-match resolution completes. hit
	// reports whether the translated candidate was already materialized,
	// i.e. no ancestor walk was needed.
	OnBestMatch(duration time.Duration, hit bool)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (o *NoopMetricsObserver) OnBuild(duration time.Duration, cuboids int, padded int, err error) {}
func (o *NoopMetricsObserver) OnBestMatch(duration time.Duration, hit bool)                       {}
