package render

// Default cell labels.
const (
	DefaultPodiumLabel   = "Podium"
	DefaultCorridorLabel = "Corridor"
	DefaultEmptyLabel    = ""
)

// Labels are the placeholder strings written into non-occupant cells.
type Labels struct {
	Podium   string
	Corridor string
	Empty    string
}

// DefaultLabels returns Podium, Corridor and the empty string.
func DefaultLabels() Labels {
	return Labels{Podium: DefaultPodiumLabel, Corridor: DefaultCorridorLabel, Empty: DefaultEmptyLabel}
}

// Option customizes Build.
type Option func(*Labels)

// WithLabels replaces all three labels at once.
func WithLabels(l Labels) Option {
	return func(dst *Labels) { *dst = l }
}

// WithPodiumLabel sets the podium marker text.
func WithPodiumLabel(s string) Option {
	return func(l *Labels) { l.Podium = s }
}

// WithCorridorLabel sets the corridor cell text.
func WithCorridorLabel(s string) Option {
	return func(l *Labels) { l.Corridor = s }
}

// WithEmptyLabel sets the text of unfilled seats.
func WithEmptyLabel(s string) Option {
	return func(l *Labels) { l.Empty = s }
}
