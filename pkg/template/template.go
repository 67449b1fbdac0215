package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"text/template/parse"

	"slub/librml/pkg/librml/codec"
	"slub/librml/pkg/librml/model"
)

// Template is a loaded document template. The template text produces the
// JSON form of a document; Variables lists the values it can be filled with.
type Template struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	ReadableName string         `json:"readablename" yaml:"readablename"`
	Description  string         `json:"description" yaml:"description"`
	Path         string         `json:"path" yaml:"path"`
	Variables    []VariableInfo `json:"variables" yaml:"variables"`

	tmpl *texttemplate.Template
}

const noDescription = "No description for this template, add one to the metadata sidecar."

var funcs = texttemplate.FuncMap{
	// json renders a value as a JSON literal, so strings are quoted and
	// escaped.
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
}

// ParseFile loads the template at path together with its sidecar.
func ParseFile(path string) (*Template, error) {
	meta, err := LoadMetadata(path)
	if err != nil {
		return nil, err
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, &TemplateNotValidError{Template: meta.ID, Message: "reading template", Cause: err}
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	t, err := Parse(name, string(text), meta)
	if err != nil {
		return nil, err
	}
	t.Path = path
	return t, nil
}

// Parse builds a template from its text and metadata.
func Parse(name, text string, meta *Metadata) (*Template, error) {
	tmpl, err := texttemplate.New(name).Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, &TemplateNotValidError{Template: meta.ID, Message: "parsing template", Cause: err}
	}

	trees := make(map[string]*parse.Tree)
	for _, assoc := range tmpl.Templates() {
		trees[assoc.Name()] = assoc.Tree
	}

	t := &Template{
		ID:           meta.ID,
		Name:         name,
		ReadableName: meta.ReadableName,
		Description:  meta.Description,
		tmpl:         tmpl,
	}
	if t.ReadableName == "" {
		t.ReadableName = name
	}
	if t.Description == "" {
		t.Description = noDescription
	}
	for _, varName := range discoverVariables(trees) {
		info, ok := meta.Variable(varName)
		if !ok {
			info = VariableInfo{Name: varName}
		}
		t.Variables = append(t.Variables, info)
	}
	return t, nil
}

// VariableNames returns the names of the template's variables in order.
func (t *Template) VariableNames() []string {
	names := make([]string, len(t.Variables))
	for i, v := range t.Variables {
		names[i] = v.Name
	}
	return names
}

// execute fills the template and decodes the result into a document for
// itemID. Values must hold every variable.
func (t *Template) execute(itemID, tenant string, values map[string]any) (*model.Document, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, values); err != nil {
		return nil, &TemplateNotValidError{Template: t.ID, Message: "executing template", Cause: err}
	}

	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, &TemplateNotValidError{Template: t.ID, Message: "rendered output is not a JSON object", Cause: err}
	}
	if data == nil {
		return nil, &TemplateNotValidError{Template: t.ID, Message: "rendered output is null"}
	}

	data[model.FieldID] = itemID
	if tenant != "" {
		data[model.FieldTenant] = tenant
	} else {
		delete(data, model.FieldTenant)
	}
	if _, ok := data[model.FieldTemplate]; !ok {
		data[model.FieldTemplate] = t.ID
	}

	doc, err := codec.DecodeDocument(data)
	if err != nil {
		return nil, &TemplateNotValidError{
			Template: t.ID,
			Message:  fmt.Sprintf("rendered document for %q is not valid", itemID),
			Cause:    err,
		}
	}
	return doc, nil
}
