package resolve

import (
	"log/slog"
	"sort"
	"strings"

	"venuematch/internal/alias"
	"venuematch/internal/catalog"
	"venuematch/internal/extract"
	"venuematch/internal/logging"
	"venuematch/internal/textutil"
)

// LocationMode describes where an event takes place.
type LocationMode string

const (
	LocationVenue  LocationMode = "venue"
	LocationOnline LocationMode = "online"
	LocationCustom LocationMode = "custom"
)

// Input bundles one resolution request. Catalog is a freshly fetched,
// de-duplicated-by-id snapshot owned by the caller; the resolver never
// mutates it. CustomLocation marks ProposedName as coming from a free-text
// location field rather than a venue-name field.
type Input struct {
	ProposedID     string
	ProposedName   string
	Message        string
	Catalog        []catalog.Entry
	LocationMode   LocationMode
	OnlineURL      string
	CustomLocation bool
}

// Resolver runs the fixed-priority venue resolution pipeline. It holds only
// configuration; every call is independent and safe to run concurrently.
type Resolver struct {
	policy    Policy
	overrides map[string][]string
	logger    *slog.Logger
}

// New constructs a resolver. Overrides are curated alias nicknames keyed by
// catalog slug; a nil logger silences the decision trace.
func New(policy Policy, overrides map[string][]string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		policy:    policy.normalized(),
		overrides: overrides,
		logger:    logger,
	}
}

// request carries per-call state between pipeline stages.
type request struct {
	input     Input
	index     alias.Index
	candidate string
}

// stage either decides the outcome or defers to the next stage.
type stage struct {
	name string
	run  func(*request) (Outcome, bool)
}

// Resolve evaluates one venue reference against the catalog snapshot and
// returns exactly one of the five outcome variants. Stage order is fixed:
// an explicit online event is never coerced into a venue match, a trusted
// id wins over any name, deterministic checks win over fuzzy scoring.
func (r *Resolver) Resolve(input Input) Outcome {
	req := &request{
		input: input,
		index: alias.Build(input.Catalog, r.overrides),
	}
	stages := []stage{
		{"online-short-circuit", r.onlineShortCircuit},
		{"trusted-id", r.trustedID},
		{"candidate-selection", r.selectCandidate},
		{"exact-name", r.exactName},
		{"slug", r.slugMatch},
		{"alias", r.aliasMatch},
		{"fuzzy", r.fuzzyFallback},
	}
	for _, st := range stages {
		outcome, decided := st.run(req)
		if !decided {
			continue
		}
		r.logger.Debug("venue resolution decided",
			logging.String("stage", st.name),
			logging.String("outcome", outcomeKind(outcome)),
			logging.String("candidate", req.candidate))
		return outcome
	}
	// The fuzzy stage always decides; this is unreachable.
	return Unresolved{InputName: req.candidate}
}

func (r *Resolver) onlineShortCircuit(req *request) (Outcome, bool) {
	if req.input.LocationMode == LocationOnline && strings.TrimSpace(req.input.OnlineURL) != "" {
		return OnlineExplicit{}, true
	}
	return nil, false
}

func (r *Resolver) trustedID(req *request) (Outcome, bool) {
	id := strings.TrimSpace(req.input.ProposedID)
	if id == "" {
		return nil, false
	}
	for _, entry := range req.input.Catalog {
		if entry.ID == id {
			return Resolved{
				VenueID:    entry.ID,
				VenueName:  entry.Name,
				Confidence: ExactConfidence,
				Source:     SourceTrustedID,
			}, true
		}
	}
	// Stale or hallucinated id: fall through to name matching.
	r.logger.Debug("proposed id not in catalog",
		logging.String("proposed_id", id),
		logging.Int("catalog_size", len(req.input.Catalog)))
	return nil, false
}

// selectCandidate picks the single name to score: an explicit proposed name
// wins over a literal catalog-name substring, which wins over an alias
// token pulled from the message.
func (r *Resolver) selectCandidate(req *request) (Outcome, bool) {
	proposed := strings.TrimSpace(req.input.ProposedName)
	switch {
	case proposed != "":
		req.candidate = proposed
	default:
		if name, ok := extract.NameFromMessage(req.input.Message, req.input.Catalog); ok {
			req.candidate = name
		} else if token, ok := extract.AliasFromMessage(req.input.Message, req.index); ok {
			req.candidate = token
		}
	}
	if req.candidate != "" {
		return nil, false
	}
	if req.input.CustomLocation && proposed != "" {
		return CustomLocation{}, true
	}
	return Unresolved{InputName: proposed}, true
}

func (r *Resolver) exactName(req *request) (Outcome, bool) {
	normalized := textutil.NormalizeForMatch(req.candidate)
	if normalized == "" {
		return nil, false
	}
	var matches []catalog.Entry
	for _, entry := range req.input.Catalog {
		if textutil.NormalizeForMatch(entry.Name) == normalized {
			matches = append(matches, entry)
		}
	}
	return r.decideDeterministic(req, matches, SourceExact, ExactConfidence)
}

func (r *Resolver) slugMatch(req *request) (Outcome, bool) {
	slug := textutil.MatchSlug(req.candidate)
	if slug == "" {
		return nil, false
	}
	var matches []catalog.Entry
	for _, entry := range req.input.Catalog {
		if entry.MatchSlug() == slug {
			matches = append(matches, entry)
		}
	}
	return r.decideDeterministic(req, matches, SourceExact, SlugConfidence)
}

func (r *Resolver) aliasMatch(req *request) (Outcome, bool) {
	matches := req.index.Lookup(req.candidate)
	return r.decideDeterministic(req, matches, SourceAlias, AliasConfidence)
}

// decideDeterministic applies the shared pre-check rule: no matches defers
// to the next stage, one match resolves at the check's fixed confidence,
// several matches surface as ambiguous at that same score.
func (r *Resolver) decideDeterministic(req *request, matches []catalog.Entry, source Source, confidence float64) (Outcome, bool) {
	switch len(matches) {
	case 0:
		return nil, false
	case 1:
		return Resolved{
			VenueID:    matches[0].ID,
			VenueName:  matches[0].Name,
			Confidence: confidence,
			Source:     source,
		}, true
	default:
		candidates := make([]ScoredCandidate, 0, len(matches))
		for _, entry := range matches {
			candidates = append(candidates, ScoredCandidate{ID: entry.ID, Name: entry.Name, Score: confidence})
		}
		return Ambiguous{
			Candidates: capCandidates(candidates, r.policy.MaxCandidates),
			InputName:  req.candidate,
		}, true
	}
}

func (r *Resolver) fuzzyFallback(req *request) (Outcome, bool) {
	scored := make([]ScoredCandidate, 0, len(req.input.Catalog))
	for _, entry := range req.input.Catalog {
		score := Score(req.candidate, entry)
		scored = append(scored, ScoredCandidate{ID: entry.ID, Name: entry.Name, Score: score})
		r.logger.Debug("fuzzy score",
			logging.String("candidate", req.candidate),
			logging.String("venue", entry.Name),
			logging.Float64("score", score))
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > 0 && scored[0].Score >= r.policy.ResolveThreshold {
		tooClose := len(scored) > 1 &&
			scored[1].Score >= r.policy.ResolveThreshold &&
			scored[0].Score-scored[1].Score < r.policy.TieMargin
		if tooClose {
			r.logger.Debug("fuzzy tie",
				logging.Float64("best", scored[0].Score),
				logging.Float64("second", scored[1].Score),
				logging.Float64("tie_margin", r.policy.TieMargin))
			return r.ambiguousAboveFloor(req, scored), true
		}
		source := SourceFuzzy
		if scored[0].Score >= SlugConfidence {
			source = SourceExact
		}
		return Resolved{
			VenueID:    scored[0].ID,
			VenueName:  scored[0].Name,
			Confidence: scored[0].Score,
			Source:     source,
		}, true
	}

	if len(scored) > 0 && scored[0].Score >= r.policy.CandidateFloor {
		return r.ambiguousAboveFloor(req, scored), true
	}

	if req.input.CustomLocation {
		return CustomLocation{}, true
	}
	return Unresolved{InputName: req.candidate}, true
}

// ambiguousAboveFloor keeps every candidate scoring at or above the floor,
// already sorted descending, capped at MaxCandidates.
func (r *Resolver) ambiguousAboveFloor(req *request, scored []ScoredCandidate) Ambiguous {
	kept := make([]ScoredCandidate, 0, len(scored))
	for _, candidate := range scored {
		if candidate.Score < r.policy.CandidateFloor {
			break
		}
		kept = append(kept, candidate)
	}
	return Ambiguous{
		Candidates: capCandidates(kept, r.policy.MaxCandidates),
		InputName:  req.candidate,
	}
}

func capCandidates(candidates []ScoredCandidate, limit int) []ScoredCandidate {
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func outcomeKind(outcome Outcome) string {
	switch outcome.(type) {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	case Unresolved:
		return "unresolved"
	case OnlineExplicit:
		return "online_explicit"
	case CustomLocation:
		return "custom_location"
	default:
		return "unknown"
	}
}
