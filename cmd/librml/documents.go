package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"slub/librml/pkg/cli"
	"slub/librml/pkg/librml/codec"
	rmlErrors "slub/librml/pkg/librml/errors"
	"slub/librml/pkg/librml/model"
	"slub/librml/pkg/telemetry/logging"
	"slub/librml/pkg/telemetry/metrics"
)

// stdio is the path meaning standard input or output.
const stdio = "-"

// resolveFormat picks the format named by flag, falling back to the file
// extension of path and then to fallback.
func resolveFormat(flag, path string, fallback codec.Format) (codec.Format, error) {
	if flag != "" {
		format, err := codec.ParseFormat(flag)
		if err != nil {
			return "", cli.NewConfigError("format", err.Error())
		}
		return format, nil
	}
	if path != "" && path != stdio {
		if format, err := codec.FormatFromPath(path); err == nil {
			return format, nil
		}
	}
	if fallback == "" {
		return "", cli.NewConfigError("format", fmt.Sprintf("cannot tell the format of %q, name it explicitly", path))
	}
	return fallback, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == stdio {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == stdio {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// decodeDocument decodes data and records the outcome.
func decodeDocument(ctx context.Context, data []byte, format codec.Format) (*model.Document, error) {
	ctx = logging.WithFormat(ctx, string(format))
	start := time.Now()
	doc, err := codec.Decode(data, format)
	collector.RecordConversion(string(format), metrics.DirectionDecode, err, time.Since(start))
	if err != nil {
		collector.RecordDecodeError(string(format), errorType(err))
		logger.DebugContext(ctx, "Decode failed", "error", err)
		return nil, err
	}
	logger.DebugContext(logging.WithItemID(ctx, doc.ID), "Document decoded", "actions", doc.Actions.Len())
	return doc, nil
}

// encodeDocument encodes doc with the configured indent and records the
// outcome. indent is ignored by formats without indentation.
func encodeDocument(ctx context.Context, doc *model.Document, format codec.Format, indent string) ([]byte, error) {
	ctx = logging.WithItemID(logging.WithFormat(ctx, string(format)), doc.ID)
	start := time.Now()
	data, err := codec.EncodeIndent(doc, format, indent)
	collector.RecordConversion(string(format), metrics.DirectionEncode, err, time.Since(start))
	if err != nil {
		logger.ErrorContext(ctx, "Encode failed", "error", err)
		return nil, err
	}
	logger.DebugContext(ctx, "Document encoded", "bytes", len(data))
	return data, nil
}

// errorType classifies a decode error for metrics and reports.
func errorType(err error) string {
	var typed interface{ Type() rmlErrors.ErrorType }
	if errors.As(err, &typed) {
		return string(typed.Type())
	}
	return "syntax"
}

func outputIndent(compact bool) string {
	if compact {
		return ""
	}
	return appConfig.Output.Indent
}

func defaultOutputFormat() (codec.Format, error) {
	format, err := codec.ParseFormat(appConfig.Output.Format)
	if err != nil {
		return "", cli.NewConfigError("output.format", err.Error())
	}
	return format, nil
}
