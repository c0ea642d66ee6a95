package logging

// ProgressSampler suppresses repetitive progress logs, emitting only when
// the percent crosses a bucket boundary or a new run starts.
type ProgressSampler struct {
	bucketSize float64
	lastRun    string
	lastBucket int
}

// NewProgressSampler constructs a sampler with the given bucket size (default 25%).
func NewProgressSampler(bucketSize float64) *ProgressSampler {
	if bucketSize <= 0 {
		bucketSize = 25
	}
	return &ProgressSampler{bucketSize: bucketSize, lastBucket: -1}
}

// ShouldLog reports whether a progress value for runID should be logged.
func (s *ProgressSampler) ShouldLog(runID string, percent float64) bool {
	if s == nil {
		return true
	}
	emit := false
	if runID != s.lastRun {
		s.lastRun = runID
		s.lastBucket = -1
		emit = true
	}
	if percent >= 0 {
		bucket := int(percent / s.bucketSize)
		if percent >= 100 {
			bucket = int(100 / s.bucketSize)
		}
		if bucket > s.lastBucket {
			s.lastBucket = bucket
			emit = true
		}
	}
	return emit
}

// Reset clears the sampler state.
func (s *ProgressSampler) Reset() {
	if s == nil {
		return
	}
	s.lastRun = ""
	s.lastBucket = -1
}
