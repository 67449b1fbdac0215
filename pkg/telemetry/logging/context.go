package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// ItemIDKey is the context key for the identifier of the document's item.
	ItemIDKey contextKey = "item_id"

	// TemplateIDKey is the context key for template identifiers.
	TemplateIDKey contextKey = "template_id"

	// FormatKey is the context key for the serialization format in use.
	FormatKey contextKey = "format"

	// PathKey is the context key for the file a document was read from.
	PathKey contextKey = "path"
)

// WithItemID adds an item identifier to the context.
func WithItemID(ctx context.Context, itemID string) context.Context {
	return context.WithValue(ctx, ItemIDKey, itemID)
}

// GetItemID retrieves the item identifier from the context.
func GetItemID(ctx context.Context) string {
	if itemID, ok := ctx.Value(ItemIDKey).(string); ok {
		return itemID
	}
	return ""
}

// WithTemplateID adds a template identifier to the context.
func WithTemplateID(ctx context.Context, templateID string) context.Context {
	return context.WithValue(ctx, TemplateIDKey, templateID)
}

// GetTemplateID retrieves the template identifier from the context.
func GetTemplateID(ctx context.Context) string {
	if templateID, ok := ctx.Value(TemplateIDKey).(string); ok {
		return templateID
	}
	return ""
}

// WithFormat adds a serialization format name to the context.
func WithFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, FormatKey, format)
}

// GetFormat retrieves the serialization format name from the context.
func GetFormat(ctx context.Context) string {
	if format, ok := ctx.Value(FormatKey).(string); ok {
		return format
	}
	return ""
}

// WithPath adds a file path to the context.
func WithPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, PathKey, path)
}

// GetPath retrieves the file path from the context.
func GetPath(ctx context.Context) string {
	if path, ok := ctx.Value(PathKey).(string); ok {
		return path
	}
	return ""
}

// extractContextFields extracts common fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if itemID := GetItemID(ctx); itemID != "" {
		fields = append(fields, string(ItemIDKey), itemID)
	}
	if templateID := GetTemplateID(ctx); templateID != "" {
		fields = append(fields, string(TemplateIDKey), templateID)
	}
	if format := GetFormat(ctx); format != "" {
		fields = append(fields, string(FormatKey), format)
	}
	if path := GetPath(ctx); path != "" {
		fields = append(fields, string(PathKey), path)
	}

	return fields
}
