package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
)

// MetaSuffix is appended to a template's base name to form its sidecar file.
const MetaSuffix = ".meta.json"

// Metadata is the content of a template's sidecar file. Sidecars are JSONC:
// comments and trailing commas are allowed.
type Metadata struct {
	ID           string         `json:"template"`
	ReadableName string         `json:"readablename"`
	Description  string         `json:"description"`
	Variables    []VariableInfo `json:"variables"`
}

// VariableInfo describes one fillable variable of a template.
type VariableInfo struct {
	Name         string `json:"name" yaml:"name"`
	Datatype     string `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	ReadableName string `json:"readablename,omitempty" yaml:"readablename,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Source       string `json:"source,omitempty" yaml:"source,omitempty"`
}

// SidecarPath returns the sidecar path for a template file.
func SidecarPath(templatePath string) string {
	base := strings.TrimSuffix(templatePath, filepath.Ext(templatePath))
	return base + MetaSuffix
}

// LoadMetadata reads and validates the sidecar of the template at
// templatePath.
func LoadMetadata(templatePath string) (*Metadata, error) {
	path := SidecarPath(templatePath)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateNotValidError{
				Template: templatePath,
				Message:  fmt.Sprintf("no metadata sidecar %s", filepath.Base(path)),
			}
		}
		return nil, &TemplateNotValidError{Template: templatePath, Message: "reading metadata", Cause: err}
	}
	return ParseMetadata(templatePath, data)
}

// ParseMetadata parses sidecar content. name identifies the template in
// errors.
func ParseMetadata(name string, data []byte) (*Metadata, error) {
	var meta Metadata
	if err := json.Unmarshal(jsonc.ToJSON(data), &meta); err != nil {
		return nil, &TemplateNotValidError{Template: name, Message: "parsing metadata", Cause: err}
	}
	if meta.ID == "" {
		return nil, &TemplateNotValidError{Template: name, Message: "metadata has no template id"}
	}
	for i, v := range meta.Variables {
		if v.Name == "" {
			return nil, &TemplateNotValidError{
				Template: meta.ID,
				Message:  fmt.Sprintf("variables[%d] has no name", i),
			}
		}
	}
	return &meta, nil
}

// Variable returns the description of the named variable.
func (m *Metadata) Variable(name string) (VariableInfo, bool) {
	for _, v := range m.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return VariableInfo{}, false
}
