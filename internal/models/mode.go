package models

// Mode selects what a report counts.
type Mode string

const (
	// ModeStandard counts raw requests over all paths.
	ModeStandard Mode = "standard"
	// ModeEngagement counts page views, keeps successful responses only and
	// restricts paths to site content.
	ModeEngagement Mode = "engagement"
)

func ModeFromEngagement(engagement bool) Mode {
	if engagement {
		return ModeEngagement
	}
	return ModeStandard
}

func (m Mode) IsEngagement() bool {
	return m == ModeEngagement
}
