package remove

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

func TestRemoveLeavesCelebration(t *testing.T) {
	p := store.NewMemory()
	if err := p.Save(context.Background(), &store.Record{
		Date: "2026-10-19",
		Tasks: []task.Task{
			{ID: 10, Text: "open"},
			{ID: 20, Text: "done", Completed: true},
		},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var out bytes.Buffer
	r := Remove{
		Target: app.Target{Index: 1},
		Service: &app.Service{
			Persistence: p,
			Locale:      locale.Must("ko-KR"),
			Clock:       timeutil.Fixed(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)),
		},
		Output: printers.Options{Out: &out},
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("remove: %v", err)
	}

	rec, _ := p.Load(context.Background())
	if len(rec.Tasks) != 1 || rec.Tasks[0].ID != 20 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if !strings.Contains(out.String(), "1/1 (100%)") {
		t.Fatalf("expected full completion in:\n%s", out.String())
	}
}
