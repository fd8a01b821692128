package resolve

import "strings"

// Mode identifies the request intent driving a resolution call.
type Mode string

const (
	ModeCreate     Mode = "create"
	ModeEditSeries Mode = "edit-series"
)

// DraftLocation is the location signal already present on a draft event.
type DraftLocation struct {
	VenueID    string
	VenueName  string
	CustomName string
	OnlineURL  string
}

func (d DraftLocation) hasSignal() bool {
	return strings.TrimSpace(d.VenueID) != "" ||
		strings.TrimSpace(d.VenueName) != "" ||
		strings.TrimSpace(d.CustomName) != "" ||
		strings.TrimSpace(d.OnlineURL) != ""
}

// ShouldResolve reports whether the resolver should run at all for this
// request. Creation always resolves; series edits resolve only when the
// message shows location intent or the draft already carries a location
// signal, so location-free edits skip resolution and clarification
// entirely. Any other mode never resolves.
func ShouldResolve(mode Mode, hasLocationIntent bool, draft DraftLocation) bool {
	switch mode {
	case ModeCreate:
		return true
	case ModeEditSeries:
		return hasLocationIntent || draft.hasSignal()
	default:
		return false
	}
}
