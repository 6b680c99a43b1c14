// Package locale renders the user-facing banner strings for a language.
package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/daily/pkg/glyph"
)

// Default is used when no locale is configured.
const Default = "ko-KR"

// Locale formats the today banner and the completion banner.
type Locale struct {
	Tag language.Tag

	dateBanner func(time.Time) string
	completion string
	cheer      string
}

var (
	korean = Locale{
		Tag:        language.Korean,
		dateBanner: koreanDate,
		completion: "완료율",
		cheer:      "수고하셨습니다",
	}
	english = Locale{
		Tag:        language.English,
		dateBanner: englishDate,
		completion: "Completion",
		cheer:      "Well done",
	}

	supported = []Locale{korean, english}
	matcher   = language.NewMatcher([]language.Tag{korean.Tag, english.Tag})
)

// Parse picks the closest supported locale for a BCP 47 tag such as "ko-KR"
// or "en_US". An empty string selects Default.
func Parse(raw string) (Locale, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "_", "-"))
	if raw == "" {
		raw = Default
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return Locale{}, fmt.Errorf("locale: parse %q: %w", raw, err)
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx], nil
}

// Must is Parse that panics on error.
func Must(raw string) Locale {
	l, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return l
}

// Today renders the full localized date, weekday included.
func (l Locale) Today(t time.Time) string {
	if l.dateBanner == nil {
		return korean.dateBanner(t)
	}
	return l.dateBanner(t)
}

// Completion renders the completion banner text.
func (l Locale) Completion(completed, total, rate int, celebrate bool) string {
	label, cheer := l.completion, l.cheer
	if label == "" {
		label, cheer = korean.completion, korean.cheer
	}
	if celebrate {
		return fmt.Sprintf("%s %s: %d/%d (%d%%) %s %s", glyph.Party, label, completed, total, rate, cheer, glyph.Party)
	}
	return fmt.Sprintf("%s %s: %d/%d (%d%%)", glyph.Fire, label, completed, total, rate)
}

// IsZero reports whether l was never set.
func (l Locale) IsZero() bool {
	return l.dateBanner == nil
}

func (l Locale) String() string {
	return l.Tag.String()
}

var koreanWeekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

func koreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일 %s", t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()])
}

func englishDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
