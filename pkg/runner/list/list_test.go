package list

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/locale"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/store"
	"tableflip.dev/daily/pkg/task"
	"tableflip.dev/daily/pkg/timeutil"
)

func TestListResetsStaleDay(t *testing.T) {
	p := store.NewMemory()
	if err := p.Save(context.Background(), &store.Record{
		Date:  "2026-10-18",
		Tasks: []task.Task{{ID: 1, Text: "yesterday"}},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var out bytes.Buffer
	l := List{
		Service: &app.Service{
			Persistence: p,
			Locale:      locale.Must("en-US"),
			Clock:       timeutil.Fixed(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)),
			Location:    time.UTC,
		},
		Output: printers.Options{Out: &out},
	}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}

	if strings.Contains(out.String(), "yesterday") {
		t.Fatalf("expected stale task gone:\n%s", out.String())
	}
	for _, want := range []string{"Monday, October 19, 2026", "Completion: 0/0 (0%)"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, out.String())
		}
	}

	r, _ := p.Load(context.Background())
	if r.Date != "2026-10-19" || len(r.Tasks) != 0 {
		t.Fatalf("expected empty record for today, got %+v", r)
	}
}

func TestListWithoutPersistence(t *testing.T) {
	l := List{Service: &app.Service{}}
	if err := l.Do(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
