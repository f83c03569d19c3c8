package search

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestQueryLogRecent(t *testing.T) {
	ctx := context.Background()
	l := NewQueryLog(setupDB(t))
	base := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	tick := 0
	l.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}

	for _, q := range []string{"grace", "faith", "existence"} {
		rec, err := l.Record(ctx, q, ModeKeyword, len(q))
		if err != nil {
			t.Fatalf("Record(%q): %v", q, err)
		}
		if _, err := uuid.Parse(rec.ID); err != nil {
			t.Errorf("record id %q is not a uuid: %v", rec.ID, err)
		}
	}

	recent, err := l.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d, want 2", len(recent))
	}
	if recent[0].Query != "existence" || recent[1].Query != "faith" {
		t.Errorf("order = %q, %q; want existence, faith", recent[0].Query, recent[1].Query)
	}
	if recent[0].Hits != len("existence") || recent[0].Mode != ModeKeyword {
		t.Errorf("record = %+v", recent[0])
	}
	if !recent[0].CreatedAt.Equal(base.Add(3 * time.Millisecond)) {
		t.Errorf("created_at = %v", recent[0].CreatedAt)
	}
}

func TestQueryLogSameInstant(t *testing.T) {
	ctx := context.Background()
	l := NewQueryLog(setupDB(t))
	fixed := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	for _, q := range []string{"first", "second"} {
		if _, err := l.Record(ctx, q, ModeSemantic, 1); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	recent, err := l.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 || recent[0].Query != "second" {
		t.Errorf("recent = %+v, want insertion order reversed", recent)
	}
}
