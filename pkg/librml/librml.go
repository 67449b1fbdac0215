package librml

import (
	"fmt"
	"os"

	"slub/librml/pkg/librml/codec"
	"slub/librml/pkg/librml/model"
)

// FromJSON is a convenience function that decodes a JSON document.
func FromJSON(data []byte) (*model.Document, error) {
	return codec.UnmarshalJSON(data)
}

// ToJSON encodes doc as compact JSON.
func ToJSON(doc *model.Document) ([]byte, error) {
	return codec.MarshalJSON(doc, "")
}

// FromXML is a convenience function that decodes a markup document.
func FromXML(data []byte) (*model.Document, error) {
	return codec.DecodeMarkup(data)
}

// ToXML encodes doc as markup.
func ToXML(doc *model.Document) ([]byte, error) {
	return codec.EncodeMarkup(doc)
}

// Convert decodes data in one format and re-encodes it in another.
// The document passes through the model, so invalid input is rejected.
func Convert(data []byte, from, to codec.Format, indent string) ([]byte, error) {
	doc, err := codec.Decode(data, from)
	if err != nil {
		return nil, err
	}
	return codec.EncodeIndent(doc, to, indent)
}

// ReadFile reads and decodes a document, inferring the format from the file
// extension.
func ReadFile(path string) (*model.Document, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := codec.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// WriteFile encodes doc and writes it to path, inferring the format from the
// file extension.
func WriteFile(path string, doc *model.Document, indent string) error {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := codec.EncodeIndent(doc, format, indent)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
