package add

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/locale"
	"tableflip.dev/daily/pkg/printers"
	"tableflip.dev/daily/pkg/store"
	"tableflip.dev/daily/pkg/timeutil"
	"tableflip.dev/daily/pkg/view"
)

func TestAddPersistsAndPrints(t *testing.T) {
	p := store.NewMemory()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	var out bytes.Buffer
	a := Add{
		Message: "buy milk",
		Service: &app.Service{Persistence: p, Locale: locale.Must("en"), Clock: timeutil.Fixed(now), Location: time.UTC},
		Output:  printers.Options{JSON: true, Out: &out},
	}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}

	var s view.Snapshot
	if err := json.Unmarshal(out.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(s.Tasks) != 1 || s.Tasks[0].Text != "buy milk" || s.Tasks[0].ID != now.UnixMilli() {
		t.Fatalf("unexpected tasks %+v", s.Tasks)
	}
	if s.Today != "Monday, October 19, 2026" {
		t.Fatalf("unexpected today %q", s.Today)
	}

	r, err := p.Load(context.Background())
	if err != nil || r == nil {
		t.Fatalf("load: %v %v", r, err)
	}
	if len(r.Tasks) != 1 || r.Date != "2026-10-19" {
		t.Fatalf("unexpected record %+v", r)
	}
}

func TestAddBlankDoesNotSave(t *testing.T) {
	p := store.NewMemory()
	a := Add{
		Message: " \t ",
		Service: &app.Service{Persistence: p, Clock: timeutil.Fixed(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))},
		Output:  printers.Options{JSON: true, Out: &bytes.Buffer{}},
	}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	// One save from the fresh-day reset, none from the blank add.
	if got := p.Saves(); got != 1 {
		t.Fatalf("expected 1 save, got %d", got)
	}
}
