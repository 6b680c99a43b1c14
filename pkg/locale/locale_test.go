package locale

import (
	"testing"
	"time"
)

func TestParseMatchesSupportedLocales(t *testing.T) {
	tests := map[string]string{
		"":      "ko",
		"ko-KR": "ko",
		"ko":    "ko",
		"en-US": "en",
		"en_GB": "en",
	}
	for raw, want := range tests {
		l, err := Parse(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got := l.String(); got != want {
			t.Fatalf("parse %q: expected %q, got %q", raw, want, got)
		}
	}
	if _, err := Parse("not a locale!"); err == nil {
		t.Fatalf("expected error for malformed tag")
	}
}

func TestToday(t *testing.T) {
	at := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	if got, want := Must("ko-KR").Today(at), "2026년 10월 19일 월요일"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := Must("en-US").Today(at), "Monday, October 19, 2026"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCompletion(t *testing.T) {
	ko := Must("ko-KR")
	if got, want := ko.Completion(1, 2, 50, false), "🔥 완료율: 1/2 (50%)"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := ko.Completion(2, 2, 100, true), "🎊 완료율: 2/2 (100%) 수고하셨습니다 🎊"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	en := Must("en")
	if got, want := en.Completion(0, 0, 0, false), "🔥 Completion: 0/0 (0%)"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestZeroLocaleFallsBackToDefault(t *testing.T) {
	var l Locale
	if got, want := l.Completion(0, 1, 0, false), "🔥 완료율: 0/1 (0%)"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
