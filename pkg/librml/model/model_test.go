package model

import (
	"testing"
	"time"
)

func TestRestriction_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Restriction
		want bool
	}{
		{"parts empty", &PartsRestriction{}, true},
		{"parts set", &PartsRestriction{Parts: []string{"p1"}}, false},
		{"duration unset", &DurationRestriction{}, true},
		{"duration zero", &DurationRestriction{Duration: Ptr(0)}, false},
		{"location subnet only", &LocationRestriction{Subnets: []string{"10.0.0.0/8"}}, false},
		{"location empty", &LocationRestriction{}, true},
		{"date to only", &DateRestriction{To: Ptr(NewDate(2026, time.February, 10))}, false},
		{"commercial false", &CommercialUseRestriction{}, true},
		{"noncommercial true", &CommercialUseRestriction{NonCommercial: true}, false},
		{"watermark empty", &WatermarkRestriction{}, true},
		{"quality bitrate", &QualityRestriction{MaxBitrate: Ptr(128)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewRestriction(t *testing.T) {
	for _, kind := range RestrictionTypes() {
		r, err := NewRestriction(kind)
		if err != nil {
			t.Fatalf("NewRestriction(%v) failed: %v", kind, err)
		}
		if r.Type() != kind {
			t.Errorf("NewRestriction(%v).Type() = %v", kind, r.Type())
		}
		if !r.IsEmpty() {
			t.Errorf("NewRestriction(%v) is not empty", kind)
		}
	}

	if _, err := NewRestriction(RestrictionType(42)); err == nil {
		t.Error("NewRestriction(42) succeeded, want error")
	}
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2026-02-11")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}
	if d != NewDate(2026, time.February, 11) {
		t.Errorf("ParseDate() = %v, want 2026-02-11", d)
	}
	if d.String() != "2026-02-11" {
		t.Errorf("String() = %q, want %q", d.String(), "2026-02-11")
	}

	for _, bad := range []string{"2026-2-11", "11.02.2026", "2026-02-30", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestDateRestriction_Contains(t *testing.T) {
	r := &DateRestriction{
		From: Ptr(NewDate(2026, time.February, 11)),
		To:   Ptr(NewDate(2026, time.March, 1)),
	}

	if !r.Contains(NewDate(2026, time.February, 11)) {
		t.Error("Contains(from) = false, want true")
	}
	if !r.Contains(NewDate(2026, time.March, 1)) {
		t.Error("Contains(to) = false, want true")
	}
	if r.Contains(NewDate(2026, time.February, 10)) {
		t.Error("Contains(before) = true, want false")
	}

	open := &DateRestriction{From: Ptr(NewDate(2026, time.February, 11))}
	if !open.Contains(NewDate(2099, time.January, 1)) {
		t.Error("open range does not contain a far future date")
	}
}

func TestDocument_ActionsByType(t *testing.T) {
	doc := New("id-1")
	doc.AddAction(NewAction(ActionRead).WithPermission(true))
	doc.AddAction(NewAction(ActionPrint))
	doc.AddAction(NewAction(ActionRead, &CountRestriction{Count: Ptr(1)}))

	reads := doc.ActionsByType(ActionRead)
	if len(reads) != 2 {
		t.Fatalf("len(ActionsByType(read)) = %d, want 2", len(reads))
	}
	if !reads[0].Permitted() {
		t.Error("first read action lost its permission")
	}
	if reads[1].Restrictions.Len() != 1 {
		t.Error("ActionsByType() did not preserve order")
	}

	moves := doc.ActionsByType(ActionMove)
	if moves == nil || len(moves) != 0 {
		t.Errorf("ActionsByType(move) = %v, want empty slice", moves)
	}
	if doc.Actions.Len() != 3 {
		t.Errorf("ActionsByType() mutated the document")
	}
	if doc.RestrictionCount() != 1 {
		t.Errorf("RestrictionCount() = %d, want 1", doc.RestrictionCount())
	}
}

func TestNewAction_PanicsOnInvalidType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewAction(0) did not panic")
		}
	}()
	NewAction(ActionType(0))
}
