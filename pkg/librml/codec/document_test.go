package codec

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	rmlErrors "slub/librml/pkg/librml/errors"
	"slub/librml/pkg/librml/model"
)

func scenarioDocument() *model.Document {
	doc := model.New("id-123456")
	doc.Tenant = "http://slub-dresden.de"
	doc.Mention = true
	doc.ShareAlike = true
	doc.AddAction(model.NewAction(model.ActionRead,
		&model.DateRestriction{From: model.Ptr(model.NewDate(2026, time.February, 11))},
	).WithPermission(true))
	return doc
}

// fullDocument carries every restriction kind with every field set.
func fullDocument() *model.Document {
	doc := model.New("ppn-1234")
	doc.Tenant = "http://slub-dresden.de"
	doc.Mention = true
	doc.ShareAlike = true
	doc.UsageGuide = "https://example.org/guide"
	doc.Template = "oa-ccby"

	doc.AddAction(model.NewAction(model.ActionRead,
		&model.PartsRestriction{Parts: []string{" chapter 1 ", "\tchapter-2", "chapter-3"}},
		&model.GroupRestriction{Groups: []string{"staff", "students ", " "}},
		&model.AgeRestriction{MinAge: model.Ptr(18)},
		&model.LocationRestriction{
			Inside:   "reading-room",
			Outside:  "abroad",
			Subnets:  []string{"141.76.0.0/16"},
			Machines: []string{"terminal-7", "\nterminal-8\n"},
		},
		&model.DateRestriction{
			From: model.Ptr(model.NewDate(2026, time.February, 11)),
			To:   model.Ptr(model.NewDate(2027, time.December, 31)),
		},
	).WithPermission(true))

	doc.AddAction(model.NewAction(model.ActionDownload,
		&model.DurationRestriction{Duration: model.Ptr(90)},
		&model.CountRestriction{Count: model.Ptr(3)},
		&model.ConcurrentRestriction{Sessions: model.Ptr(2)},
		&model.WatermarkRestriction{Value: " SLUB "},
		&model.CommercialUseRestriction{Commercial: true, NonCommercial: true},
		&model.QualityRestriction{MaxResolution: model.Ptr(1080), MaxBitrate: model.Ptr(5000)},
	).WithPermission(true))

	doc.AddAction(model.NewAction(model.ActionPrint).WithPermission(true))
	return doc
}

// assertDocumentsEqual compares documents field by field, including every
// restriction.
func assertDocumentsEqual(t *testing.T, got, want *model.Document) {
	t.Helper()

	if got.ID != want.ID {
		t.Errorf("ID = %q, want %q", got.ID, want.ID)
	}
	if got.Tenant != want.Tenant {
		t.Errorf("Tenant = %q, want %q", got.Tenant, want.Tenant)
	}
	if got.Mention != want.Mention {
		t.Errorf("Mention = %v, want %v", got.Mention, want.Mention)
	}
	if got.ShareAlike != want.ShareAlike {
		t.Errorf("ShareAlike = %v, want %v", got.ShareAlike, want.ShareAlike)
	}
	if got.UsageGuide != want.UsageGuide {
		t.Errorf("UsageGuide = %q, want %q", got.UsageGuide, want.UsageGuide)
	}
	if got.Template != want.Template {
		t.Errorf("Template = %q, want %q", got.Template, want.Template)
	}
	if got.Actions.Len() != want.Actions.Len() {
		t.Fatalf("Actions.Len() = %d, want %d", got.Actions.Len(), want.Actions.Len())
	}

	gotActions, wantActions := got.Actions.Items(), want.Actions.Items()
	for i := range wantActions {
		g, w := gotActions[i], wantActions[i]
		if g.Type() != w.Type() {
			t.Errorf("action[%d].Type() = %v, want %v", i, g.Type(), w.Type())
		}
		if g.Permitted() != w.Permitted() {
			t.Errorf("action[%d].Permitted() = %v, want %v", i, g.Permitted(), w.Permitted())
		}
		if !reflect.DeepEqual(g.Restrictions.Items(), w.Restrictions.Items()) {
			t.Errorf("action[%d].Restrictions = %#v, want %#v", i, g.Restrictions.Items(), w.Restrictions.Items())
		}
	}
}

func TestEncodeDocument_Scenario(t *testing.T) {
	want := `{"id":"id-123456","tenant":"http://slub-dresden.de","mention":true,"sharealike":true,` +
		`"actions":[{"type":"read","permission":true,"restrictions":[{"type":"date","fromdate":"2026-02-11"}]}]}`

	data, err := MarshalJSON(scenarioDocument(), "")
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var got, expected any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal(got) error = %v", err)
	}
	if err := json.Unmarshal([]byte(want), &expected); err != nil {
		t.Fatalf("json.Unmarshal(want) error = %v", err)
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("MarshalJSON() = %s, want %s", data, want)
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	want := fullDocument()

	got, err := DecodeDocument(EncodeDocument(want))
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	assertDocumentsEqual(t, got, want)
}

func TestDocument_Idempotent(t *testing.T) {
	first, err := MarshalJSON(fullDocument(), "")
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	data := first
	for pass := 1; pass <= 2; pass++ {
		doc, err := UnmarshalJSON(data)
		if err != nil {
			t.Fatalf("pass %d: UnmarshalJSON() error = %v", pass, err)
		}
		data, err = MarshalJSON(doc, "")
		if err != nil {
			t.Fatalf("pass %d: MarshalJSON() error = %v", pass, err)
		}
		if string(data) != string(first) {
			t.Errorf("pass %d: output = %s, want %s", pass, data, first)
		}
	}
}

func TestEncodeRestriction_Omission(t *testing.T) {
	tests := []struct {
		name        string
		restriction model.Restriction
		wantOK      bool
	}{
		{"unset duration", &model.DurationRestriction{}, false},
		{"zero duration", &model.DurationRestriction{Duration: model.Ptr(0)}, true},
		{"unset count", &model.CountRestriction{}, false},
		{"zero count", &model.CountRestriction{Count: model.Ptr(0)}, true},
		{"empty parts", &model.PartsRestriction{}, false},
		{"empty watermark", &model.WatermarkRestriction{}, false},
		{"false commercial use", &model.CommercialUseRestriction{}, false},
		{"open date range", &model.DateRestriction{}, false},
		{"to date only", &model.DateRestriction{To: model.Ptr(model.NewDate(2030, time.January, 1))}, true},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := EncodeRestriction(tt.restriction)
			if ok != tt.wantOK {
				t.Errorf("EncodeRestriction() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestEncodeAction_DropsEmptyRestrictions(t *testing.T) {
	action := model.NewAction(model.ActionDownload,
		&model.DurationRestriction{},
		&model.CountRestriction{Count: model.Ptr(5)},
	)

	encoded := EncodeAction(action)
	if _, ok := encoded[model.FieldPermission]; ok {
		t.Errorf("permission written for action without permission")
	}
	restrictions, ok := encoded[model.FieldRestrictions].([]any)
	if !ok {
		t.Fatalf("restrictions = %T, want []any", encoded[model.FieldRestrictions])
	}
	if len(restrictions) != 1 {
		t.Fatalf("len(restrictions) = %d, want 1", len(restrictions))
	}
	want := map[string]any{"type": "count", "count": 5}
	if !reflect.DeepEqual(restrictions[0], want) {
		t.Errorf("restrictions[0] = %v, want %v", restrictions[0], want)
	}
}

func TestEncodeDocument_OptionalKeys(t *testing.T) {
	encoded := EncodeDocument(model.New("x"))
	want := map[string]any{"id": "x"}
	if !reflect.DeepEqual(encoded, want) {
		t.Errorf("EncodeDocument() = %v, want %v", encoded, want)
	}

	// A zero-value document has no list allocated.
	encoded = EncodeDocument(&model.Document{ID: "y"})
	if _, ok := encoded[model.FieldActions]; ok {
		t.Errorf("actions written for document without actions")
	}
}

func TestDecodeAction_Permission(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want bool
	}{
		{"native true", true, true},
		{"string true", "true", true},
		{"native false", false, false},
		{"string yes", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := DecodeAction(map[string]any{"type": "read", "permission": tt.raw})
			if err != nil {
				t.Fatalf("DecodeAction() error = %v", err)
			}
			if action.Permitted() != tt.want {
				t.Errorf("Permitted() = %v, want %v", action.Permitted(), tt.want)
			}
			if action.Permission == nil {
				t.Errorf("Permission = nil, want explicit flag")
			}
		})
	}
}

func TestDecodeRestriction_IntegerCoercion(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int
		wantErr bool
	}{
		{"int", 7, 7, false},
		{"int64", int64(7), 7, false},
		{"uint64", uint64(7), 7, false},
		{"integral float", float64(7), 7, false},
		{"json number", json.Number("7"), 7, false},
		{"numeric string", "7", 7, false},
		{"zero", 0, 0, false},
		{"fractional float", 7.5, 0, true},
		{"float at 2^63", float64(1 << 63), 0, true},
		{"float below -2^63", -float64(1<<63) * 2, 0, true},
		{"word", "seven", 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := DecodeRestriction(model.RestrictionCount, map[string]any{"count": tt.raw})
			if tt.wantErr {
				var coercionErr *rmlErrors.CoercionError
				if !errors.As(err, &coercionErr) {
					t.Fatalf("DecodeRestriction() error = %v, want CoercionError", err)
				}
				if coercionErr.Field != "count" {
					t.Errorf("Field = %q, want %q", coercionErr.Field, "count")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeRestriction() error = %v", err)
			}
			count := r.(*model.CountRestriction).Count
			if count == nil || *count != tt.want {
				t.Errorf("Count = %v, want %d", count, tt.want)
			}
		})
	}
}

func TestDecodeRestriction_ReadsOnlyOwnFields(t *testing.T) {
	r, err := DecodeRestriction(model.RestrictionAge, map[string]any{
		"minage":   16,
		"count":    "not read",
		"fromdate": "not a date",
	})
	if err != nil {
		t.Fatalf("DecodeRestriction() error = %v", err)
	}
	age, ok := r.(*model.AgeRestriction)
	if !ok {
		t.Fatalf("DecodeRestriction() = %T, want *model.AgeRestriction", r)
	}
	if age.MinAge == nil || *age.MinAge != 16 {
		t.Errorf("MinAge = %v, want 16", age.MinAge)
	}
}

func TestDecodeRestriction_InvalidDate(t *testing.T) {
	_, err := DecodeRestriction(model.RestrictionDate, map[string]any{"fromdate": "2026-02-30"})

	var coercionErr *rmlErrors.CoercionError
	if !errors.As(err, &coercionErr) {
		t.Fatalf("DecodeRestriction() error = %v, want CoercionError", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("CoercionError has no cause")
	}
}

func TestDecodeDocument_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     map[string]any
		wantType rmlErrors.ErrorType
		wantPath string
	}{
		{
			name:     "missing id",
			data:     map[string]any{"tenant": "t"},
			wantType: rmlErrors.ErrorTypeNotValid,
		},
		{
			name:     "non-string id",
			data:     map[string]any{"id": 42},
			wantType: rmlErrors.ErrorTypeCoercion,
		},
		{
			name: "unknown action type",
			data: map[string]any{"id": "x", "actions": []any{
				map[string]any{"type": "fly"},
			}},
			wantType: rmlErrors.ErrorTypeUnknownKind,
		},
		{
			name: "action without type",
			data: map[string]any{"id": "x", "actions": []any{
				map[string]any{"permission": true},
			}},
			wantType: rmlErrors.ErrorTypeUnknownKind,
		},
		{
			name: "restriction without type",
			data: map[string]any{"id": "x", "actions": []any{
				map[string]any{"type": "read"},
				map[string]any{"type": "print", "restrictions": []any{
					map[string]any{"count": 1},
				}},
			}},
			wantType: rmlErrors.ErrorTypeNotValid,
			wantPath: "actions[1].restrictions[0]",
		},
		{
			name: "unknown restriction type",
			data: map[string]any{"id": "x", "actions": []any{
				map[string]any{"type": "read", "restrictions": []any{
					map[string]any{"type": "weather"},
				}},
			}},
			wantType: rmlErrors.ErrorTypeUnknownKind,
		},
		{
			name:     "actions not a list",
			data:     map[string]any{"id": "x", "actions": "read"},
			wantType: rmlErrors.ErrorTypeCoercion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument(tt.data)
			if err == nil {
				t.Fatalf("DecodeDocument() = %v, want error", doc)
			}
			if doc != nil {
				t.Errorf("DecodeDocument() returned a partial document")
			}
			typed, ok := err.(interface{ Type() rmlErrors.ErrorType })
			if !ok {
				t.Fatalf("error %T has no Type()", err)
			}
			if typed.Type() != tt.wantType {
				t.Errorf("error type = %s, want %s", typed.Type(), tt.wantType)
			}
			if tt.wantPath != "" {
				var notValid *rmlErrors.NotValidError
				if errors.As(err, &notValid) && notValid.Path != tt.wantPath {
					t.Errorf("Path = %q, want %q", notValid.Path, tt.wantPath)
				}
			}
		})
	}
}

func TestDecodeDocument_IgnoresUnknownKeys(t *testing.T) {
	doc, err := DecodeDocument(map[string]any{"id": "x", "comment": "ignored"})
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	if doc.ID != "x" {
		t.Errorf("ID = %q, want %q", doc.ID, "x")
	}
	if doc.Tenant != "" {
		t.Errorf("Tenant = %q, want empty", doc.Tenant)
	}
}
