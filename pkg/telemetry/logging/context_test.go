package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestContextKeys(t *testing.T) {
	ctx := context.Background()

	ctx = WithItemID(ctx, "id-123456")
	if got := GetItemID(ctx); got != "id-123456" {
		t.Errorf("GetItemID() = %q, want %q", got, "id-123456")
	}

	ctx = WithTemplateID(ctx, "oa-ccby")
	if got := GetTemplateID(ctx); got != "oa-ccby" {
		t.Errorf("GetTemplateID() = %q, want %q", got, "oa-ccby")
	}

	ctx = WithFormat(ctx, "xml")
	if got := GetFormat(ctx); got != "xml" {
		t.Errorf("GetFormat() = %q, want %q", got, "xml")
	}

	ctx = WithPath(ctx, "rights/doc.json")
	if got := GetPath(ctx); got != "rights/doc.json" {
		t.Errorf("GetPath() = %q, want %q", got, "rights/doc.json")
	}
}

func TestContextKeys_Empty(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		get  func(context.Context) string
	}{
		{"ItemID", GetItemID},
		{"TemplateID", GetTemplateID},
		{"Format", GetFormat},
		{"Path", GetPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.get(ctx); got != "" {
				t.Errorf("Get%s() = %q, want empty string", tt.name, got)
			}
		})
	}
}

func TestExtractContextFields(t *testing.T) {
	ctx := WithItemID(context.Background(), "id-1")
	ctx = WithFormat(ctx, "json")

	fields := extractContextFields(ctx)
	want := []any{"item_id", "id-1", "format", "json"}
	if len(fields) != len(want) {
		t.Fatalf("extractContextFields() = %v, want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("fields[%d] = %v, want %v", i, fields[i], want[i])
		}
	}

	if fields := extractContextFields(context.Background()); len(fields) != 0 {
		t.Errorf("extractContextFields(empty) = %v, want none", fields)
	}
}

func TestLogger_WithContext_NoFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "info", Format: "json", Writer: buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if got := logger.WithContext(context.Background()); got != logger {
		t.Errorf("WithContext(empty) returned a new logger")
	}

	ctx := WithTemplateID(context.Background(), "oa-ccby")
	logger.WithContext(ctx).Info("template loaded")
	if !strings.Contains(buf.String(), `"template_id":"oa-ccby"`) {
		t.Errorf("template_id not found in output: %s", buf.String())
	}
}
