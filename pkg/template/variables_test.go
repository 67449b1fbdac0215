package template

import (
	"slices"
	"testing"
	texttemplate "text/template"
	"text/template/parse"
)

func TestDiscoverVariables(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "none", text: `{"mention": true}`, want: []string{}},
		{name: "field", text: `{{ .count }}`, want: []string{"count"}},
		{name: "nested field uses root", text: `{{ .period.from }}`, want: []string{"period"}},
		{name: "function argument", text: `{{ json .guide }}`, want: []string{"guide"}},
		{name: "pipeline", text: `{{ .guide | printf "%q" }}`, want: []string{"guide"}},
		{name: "dollar", text: `{{ $.tenant }}`, want: []string{"tenant"}},
		{name: "if condition and branches", text: `{{ if .a }}{{ .b }}{{ else }}{{ .c }}{{ end }}`, want: []string{"a", "b", "c"}},
		{name: "range body rebinds dot", text: `{{ range .groups }}{{ .name }}{{ $.sep }}{{ end }}`, want: []string{"groups", "sep"}},
		{name: "with body rebinds dot", text: `{{ with .period }}{{ .from }}{{ else }}{{ .fallback }}{{ end }}`, want: []string{"fallback", "period"}},
		{name: "sorted and unique", text: `{{ .z }}{{ .a }}{{ .z }}`, want: []string{"a", "z"}},
		{name: "associated template", text: `{{ define "part" }}{{ .inner }}{{ end }}{{ template "part" . }}`, want: []string{"inner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := texttemplate.New("t").Funcs(funcs).Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			trees := make(map[string]*parse.Tree)
			for _, assoc := range tmpl.Templates() {
				trees[assoc.Name()] = assoc.Tree
			}

			got := discoverVariables(trees)
			if !slices.Equal(got, tt.want) {
				t.Errorf("discoverVariables() = %v, want %v", got, tt.want)
			}
		})
	}
}
