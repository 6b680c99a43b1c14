package tasklist

import (
	"fmt"

	"tableflip.dev/daily/pkg/locale"
	"tableflip.dev/daily/pkg/task"
)

// Style selects how the completion banner is drawn.
type Style int

const (
	// StyleStandard covers both "nothing done yet" and "partly done".
	StyleStandard Style = iota
	// StyleCelebrate is shown once every task on a non-empty list is done.
	StyleCelebrate
)

func (s Style) String() string {
	if s == StyleCelebrate {
		return "celebrate"
	}
	return "standard"
}

// MarshalText writes the style by name.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText reads a style written by MarshalText.
func (s *Style) UnmarshalText(text []byte) error {
	switch string(text) {
	case "celebrate":
		*s = StyleCelebrate
	case "standard":
		*s = StyleStandard
	default:
		return fmt.Errorf("tasklist: unknown style %q", text)
	}
	return nil
}

// Summary counts the list for the completion banner.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Rate      int `json:"rate"`
}

// Summarize counts tasks and computes the completion percentage, rounded
// half up to the nearest integer.
func Summarize(tasks []task.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Rate = (s.Completed*200 + s.Total) / (2 * s.Total)
	}
	return s
}

// Celebrate reports whether every task on a non-empty list is done.
func (s Summary) Celebrate() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// Style picks the banner style for s.
func (s Summary) Style() Style {
	if s.Celebrate() {
		return StyleCelebrate
	}
	return StyleStandard
}

// Banner is the rendered completion line.
type Banner struct {
	Text    string  `json:"text"`
	Style   Style   `json:"style"`
	Summary Summary `json:"summary"`
}

// NewBanner renders s for l.
func NewBanner(s Summary, l locale.Locale) Banner {
	return Banner{
		Text:    l.Completion(s.Completed, s.Total, s.Rate, s.Celebrate()),
		Style:   s.Style(),
		Summary: s,
	}
}
