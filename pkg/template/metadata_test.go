package template

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSidecarPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"templates/embargo.tmpl", "templates/embargo.meta.json"},
		{"embargo.jinja", "embargo.meta.json"},
		{"dir/v1.2.tmpl", "dir/v1.2.meta.json"},
	}

	for _, tt := range tests {
		if got := SidecarPath(tt.path); got != tt.want {
			t.Errorf("SidecarPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoadMetadata(t *testing.T) {
	meta, err := LoadMetadata(filepath.Join("testdata", "embargo.tmpl"))
	if err != nil {
		t.Fatalf("LoadMetadata() error = %v", err)
	}
	if meta.ID != "embargo" {
		t.Errorf("ID = %q, want %q", meta.ID, "embargo")
	}
	if len(meta.Variables) != 2 {
		t.Fatalf("Variables = %d, want 2", len(meta.Variables))
	}

	v, ok := meta.Variable("count")
	if !ok {
		t.Fatal("Variable(count) not found")
	}
	if v.Datatype != "int" {
		t.Errorf("Datatype = %q, want %q", v.Datatype, "int")
	}
	if _, ok := meta.Variable("missing"); ok {
		t.Error("Variable(missing) found, want not found")
	}
}

func TestLoadMetadata_Missing(t *testing.T) {
	_, err := LoadMetadata(filepath.Join("testdata", "orphan.tmpl"))
	var notValid *TemplateNotValidError
	if !errors.As(err, &notValid) {
		t.Fatalf("LoadMetadata() error = %v, want *TemplateNotValidError", err)
	}
}

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "minimal", data: `{"template": "t"}`},
		{name: "comments and trailing commas", data: "/* header */\n{\"template\": \"t\", // id\n}"},
		{name: "malformed", data: `{"template": `, wantErr: true},
		{name: "missing id", data: `{"readablename": "T"}`, wantErr: true},
		{name: "unnamed variable", data: `{"template": "t", "variables": [{"datatype": "int"}]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMetadata("t.tmpl", []byte(tt.data))
			if tt.wantErr {
				var notValid *TemplateNotValidError
				if !errors.As(err, &notValid) {
					t.Errorf("ParseMetadata() error = %v, want *TemplateNotValidError", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseMetadata() error = %v", err)
			}
		})
	}
}

func TestTemplateNotValidError(t *testing.T) {
	cause := errors.New("boom")
	err := &TemplateNotValidError{Template: "embargo", Message: "parsing template", Cause: cause}

	want := `template "embargo" is not valid: parsing template: boom`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the cause")
	}

	unknown := &UnknownTemplateError{ID: "x"}
	if unknown.Error() != `no template "x" found` {
		t.Errorf("Error() = %q", unknown.Error())
	}
}
