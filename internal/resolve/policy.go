package resolve

// Resolution thresholds. The fuzzy stage resolves outright at or above
// ResolveThreshold, offers candidates down to CandidateFloor, and treats
// two qualifying scores closer than TieMargin as too close to call.
const (
	DefaultResolveThreshold = 0.80
	DefaultCandidateFloor   = 0.40
	DefaultTieMargin        = 0.05
	DefaultMaxCandidates    = 3

	// Fixed confidences of the deterministic pre-checks.
	ExactConfidence = 1.0
	SlugConfidence  = 0.95
	AliasConfidence = 0.93

	// FirstTokenBoost rewards a shared leading token; venue names usually
	// lead with their distinguishing word.
	FirstTokenBoost = 0.05
)

// Policy centralizes resolver thresholds.
type Policy struct {
	ResolveThreshold float64
	CandidateFloor   float64
	TieMargin        float64
	MaxCandidates    int
}

// DefaultPolicy returns the thresholds the surrounding application ships
// with.
func DefaultPolicy() Policy {
	return Policy{
		ResolveThreshold: DefaultResolveThreshold,
		CandidateFloor:   DefaultCandidateFloor,
		TieMargin:        DefaultTieMargin,
		MaxCandidates:    DefaultMaxCandidates,
	}
}

func (p Policy) normalized() Policy {
	d := DefaultPolicy()
	if p.ResolveThreshold <= 0 || p.ResolveThreshold > 1 {
		p.ResolveThreshold = d.ResolveThreshold
	}
	if p.CandidateFloor <= 0 || p.CandidateFloor > 1 {
		p.CandidateFloor = d.CandidateFloor
	}
	if p.TieMargin <= 0 || p.TieMargin >= 1 {
		p.TieMargin = d.TieMargin
	}
	if p.MaxCandidates <= 0 {
		p.MaxCandidates = d.MaxCandidates
	}
	return p
}
