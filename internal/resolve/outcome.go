package resolve

// Source records which pipeline stage produced a resolved outcome.
type Source string

const (
	SourceTrustedID Source = "trusted-id"
	SourceExact     Source = "exact"
	SourceAlias     Source = "alias"
	SourceFuzzy     Source = "fuzzy"
)

// Outcome is the closed result union of a resolution call. Exactly five
// types implement it; callers type-switch over all of them.
type Outcome interface {
	outcome()
}

// Resolved identifies exactly one catalog entry.
type Resolved struct {
	VenueID    string
	VenueName  string
	Confidence float64
	Source     Source
}

// Ambiguous reports that several catalog entries are each plausible. The
// caller must ask, not guess.
type Ambiguous struct {
	// Candidates is sorted by score descending and capped at the policy's
	// MaxCandidates. Every id exists in the input catalog.
	Candidates []ScoredCandidate
	InputName  string
}

// Unresolved reports that nothing in the catalog plausibly matches.
// InputName carries the candidate text when one was selected.
type Unresolved struct {
	InputName string
}

// OnlineExplicit marks an online event with an explicit URL; no venue
// applies and no venue fields should change.
type OnlineExplicit struct{}

// CustomLocation preserves free-text location intent instead of coercing
// it into the catalog.
type CustomLocation struct{}

func (Resolved) outcome()       {}
func (Ambiguous) outcome()      {}
func (Unresolved) outcome()     {}
func (OnlineExplicit) outcome() {}
func (CustomLocation) outcome() {}

// ScoredCandidate pairs a catalog entry with its similarity score.
type ScoredCandidate struct {
	ID    string
	Name  string
	Score float64
}
