package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	rmlErrors "slub/librml/pkg/librml/errors"
	"slub/librml/pkg/librml/model"
)

// Format is a serialization of a LibRML document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
	FormatXML  Format = "xml"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCBOR, FormatXML}
}

// ParseFormat returns the format with the given name. Matching is
// case-insensitive and "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be json, yaml, cbor or xml)", name)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %q: no file extension", path)
	}
	return ParseFormat(ext)
}

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	// Structured documents only use string keys; decode nested maps as
	// map[string]any so they reach DecodeDocument unchanged.
	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalJSON encodes doc as JSON. A non-empty indent pretty-prints.
func MarshalJSON(doc *model.Document, indent string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if indent != "" {
		data, err = json.MarshalIndent(EncodeDocument(doc), "", indent)
	} else {
		data, err = json.Marshal(EncodeDocument(doc))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return data, nil
}

// UnmarshalJSON decodes a JSON document. Numbers are kept exact.
func UnmarshalJSON(data []byte) (*model.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return DecodeDocument(raw)
}

// DecodeActionJSON decodes a standalone JSON action object such as
// {"type": "read", "permission": true}.
func DecodeActionJSON(data []byte) (*model.Action, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if raw == nil {
		return nil, rmlErrors.NewNotValidError("", "action is null")
	}
	return DecodeAction(raw)
}

// MarshalYAML encodes doc as YAML.
func MarshalYAML(doc *model.Document) ([]byte, error) {
	data, err := yaml.Marshal(EncodeDocument(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}

// UnmarshalYAML decodes a YAML document.
func UnmarshalYAML(data []byte) (*model.Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return DecodeDocument(raw)
}

// MarshalCBOR encodes doc as CBOR with core deterministic encoding, so the
// same document always produces the same bytes.
func MarshalCBOR(doc *model.Document) ([]byte, error) {
	data, err := cborEncMode.Marshal(EncodeDocument(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to encode CBOR: %w", err)
	}
	return data, nil
}

// UnmarshalCBOR decodes a CBOR document.
func UnmarshalCBOR(data []byte) (*model.Document, error) {
	var raw map[string]any
	if err := cborDecMode.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse CBOR: %w", err)
	}
	return DecodeDocument(raw)
}

// MarshalXML encodes doc as markup. A non-empty indent pretty-prints.
func MarshalXML(doc *model.Document, indent string) ([]byte, error) {
	return EncodeMarkupIndent(doc, indent)
}

// UnmarshalXML decodes a markup document.
func UnmarshalXML(data []byte) (*model.Document, error) {
	return DecodeMarkup(data)
}

// Encode serializes doc in the given format.
func Encode(doc *model.Document, format Format) ([]byte, error) {
	return EncodeIndent(doc, format, "")
}

// EncodeIndent is like Encode but pretty-prints text formats with indent.
// CBOR ignores indent.
func EncodeIndent(doc *model.Document, format Format, indent string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalJSON(doc, indent)
	case FormatYAML:
		return MarshalYAML(doc)
	case FormatCBOR:
		return MarshalCBOR(doc)
	case FormatXML:
		return MarshalXML(doc, indent)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*model.Document, error) {
	switch format {
	case FormatJSON:
		return UnmarshalJSON(data)
	case FormatYAML:
		return UnmarshalYAML(data)
	case FormatCBOR:
		return UnmarshalCBOR(data)
	case FormatXML:
		return UnmarshalXML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
