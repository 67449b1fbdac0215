package model

import (
	stderrors "errors"
	"testing"

	rmlErrors "slub/librml/pkg/librml/errors"
)

func TestParseActionType(t *testing.T) {
	for _, name := range []string{"read", "READ", "Read"} {
		got, err := ParseActionType(name)
		if err != nil {
			t.Fatalf("ParseActionType(%q) failed: %v", name, err)
		}
		if got != ActionRead {
			t.Errorf("ParseActionType(%q) = %v, want %v", name, got, ActionRead)
		}
	}

	_, err := ParseActionType("fly")
	var unknown *rmlErrors.UnknownKindError
	if !stderrors.As(err, &unknown) {
		t.Fatalf("ParseActionType(\"fly\") error = %v, want UnknownKindError", err)
	}
	if unknown.Family != rmlErrors.FamilyAction {
		t.Errorf("Family = %q, want %q", unknown.Family, rmlErrors.FamilyAction)
	}
	if unknown.Name != "fly" {
		t.Errorf("Name = %q, want %q", unknown.Name, "fly")
	}
}

func TestParseActionType_NoPartialMatch(t *testing.T) {
	for _, name := range []string{"rea", "reads", " read", ""} {
		if _, err := ParseActionType(name); err == nil {
			t.Errorf("ParseActionType(%q) succeeded, want error", name)
		}
	}
}

func TestParseRestrictionType(t *testing.T) {
	tests := []struct {
		name string
		want RestrictionType
	}{
		{"parts", RestrictionParts},
		{"GROUP", RestrictionGroup},
		{"Date", RestrictionDate},
		{"commercialUse", RestrictionCommercialUse},
		{"quality", RestrictionQuality},
	}

	for _, tt := range tests {
		got, err := ParseRestrictionType(tt.name)
		if err != nil {
			t.Fatalf("ParseRestrictionType(%q) failed: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("ParseRestrictionType(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	_, err := ParseRestrictionType("agreement")
	var unknown *rmlErrors.UnknownKindError
	if !stderrors.As(err, &unknown) || unknown.Family != rmlErrors.FamilyRestriction {
		t.Errorf("ParseRestrictionType(\"agreement\") error = %v, want restriction UnknownKindError", err)
	}
}

func TestTypeNames(t *testing.T) {
	if got := ActionDisplayMetadata.String(); got != "displaymetadata" {
		t.Errorf("String() = %q, want %q", got, "displaymetadata")
	}
	if got := RestrictionCommercialUse.Name(); got != "COMMERCIALUSE" {
		t.Errorf("Name() = %q, want %q", got, "COMMERCIALUSE")
	}
	if got := len(ActionTypes()); got != 14 {
		t.Errorf("len(ActionTypes()) = %d, want 14", got)
	}
	if got := len(RestrictionTypes()); got != 11 {
		t.Errorf("len(RestrictionTypes()) = %d, want 11", got)
	}
	if ActionType(0).Valid() || ActionType(15).Valid() {
		t.Error("out-of-range ActionType reported as valid")
	}
	if got := ActionType(99).String(); got != "" {
		t.Errorf("String() of invalid type = %q, want empty", got)
	}
}

func TestRoundTripNames(t *testing.T) {
	for _, kind := range RestrictionTypes() {
		got, err := ParseRestrictionType(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParseRestrictionType(%q) = %v, %v; want %v", kind.String(), got, err, kind)
		}
	}
	for _, kind := range ActionTypes() {
		got, err := ParseActionType(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParseActionType(%q) = %v, %v; want %v", kind.String(), got, err, kind)
		}
	}
}
