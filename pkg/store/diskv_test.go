package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/daily/pkg/task"
)

func TestLoadMissingRecordIsNil(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	r, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r != nil {
		t.Fatalf("expected nil record, got %+v", r)
	}
}

func TestSaveLoadRoundTripAcrossInstances(t *testing.T) {
	base := t.TempDir()
	ctx := context.Background()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	want := &Record{
		Date: "2026-10-19",
		Tasks: []task.Task{
			{ID: 100, Text: "walk dog"},
			{ID: 50, Text: "buy milk", Completed: true},
		},
	}
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload persistence: %v", err)
	}
	got, err := again.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.Date != want.Date || len(got.Tasks) != len(want.Tasks) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	for i := range want.Tasks {
		if got.Tasks[i] != want.Tasks[i] {
			t.Fatalf("task %d: expected %+v, got %+v", i, want.Tasks[i], got.Tasks[i])
		}
	}

	if _, err := os.Stat(filepath.Join(base, StateKey)); err != nil {
		t.Fatalf("expected record file: %v", err)
	}
}

func TestSaveEmptyListWritesArray(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Save(context.Background(), &Record{Date: "2026-10-19"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(base, StateKey))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(b), `{"tasks":[],"date":"2026-10-19"}`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestLoadCorruptRecord(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, StateKey), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := p.Load(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestLoadRequiresBasePath(t *testing.T) {
	if _, err := Load(testConfig{}); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}

func TestMemoryPersistence(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	if r, err := m.Load(ctx); err != nil || r != nil {
		t.Fatalf("expected empty memory store, got %+v, %v", r, err)
	}

	r := &Record{Date: "2026-10-19", Tasks: []task.Task{{ID: 1, Text: "a"}}}
	if err := m.Save(ctx, r); err != nil {
		t.Fatalf("save: %v", err)
	}
	r.Tasks[0].Text = "mutated"
	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Tasks[0].Text != "a" {
		t.Fatalf("memory store shares slices with caller: %+v", got)
	}

	boom := errors.New("quota exceeded")
	m.FailWith(boom)
	if err := m.Save(ctx, r); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	if m.Saves() != 1 {
		t.Fatalf("expected 1 save, got %d", m.Saves())
	}

	m.SetRaw([]byte("garbage"))
	if _, err := m.Load(ctx); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}
