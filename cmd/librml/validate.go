package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slub/librml/pkg/cli"
	"slub/librml/pkg/telemetry/logging"
)

var validateFlags struct {
	format   string
	output   string
	progress bool
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check that documents decode",
	Long: `Decode each file and report the documents that are not valid.

The format of each file is taken from --format or from its extension. The
command fails if any file does not decode.

Examples:
  # Check a directory of JSON records
  librml validate records/*.json

  # Machine-readable report
  librml validate --output json a.xml b.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "", "input format for all files: json, yaml, cbor, xml")
	validateCmd.Flags().StringVar(&validateFlags.output, "output", "text", "report format: text, json, yaml")
	validateCmd.Flags().BoolVar(&validateFlags.progress, "progress", false, "show a progress bar on stderr")
}

// fileResult is the validation outcome for one file.
type fileResult struct {
	Path         string `json:"path" yaml:"path"`
	Valid        bool   `json:"valid" yaml:"valid"`
	ItemID       string `json:"item_id,omitempty" yaml:"item_id,omitempty"`
	Actions      int    `json:"actions" yaml:"actions"`
	Restrictions int    `json:"restrictions" yaml:"restrictions"`
	ErrorType    string `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
}

// validationReport is printed by the validate command.
type validationReport struct {
	Files  []fileResult `json:"files" yaml:"files"`
	Valid  int          `json:"valid" yaml:"valid"`
	Failed int          `json:"failed" yaml:"failed"`
}

func (r validationReport) String() string {
	var b strings.Builder
	for _, f := range r.Files {
		if f.Valid {
			fmt.Fprintf(&b, "✓ %s (%s: %d actions, %d restrictions)\n", f.Path, f.ItemID, f.Actions, f.Restrictions)
		} else {
			fmt.Fprintf(&b, "✗ %s: %s\n", f.Path, f.Error)
		}
	}
	fmt.Fprintf(&b, "%d valid, %d failed", r.Valid, r.Failed)
	return b.String()
}

func runValidate(cmd *cobra.Command, args []string) error {
	outputFormat, err := cli.ParseOutputFormat(validateFlags.output)
	if err != nil {
		return err
	}

	var progress cli.ProgressReporter
	if validateFlags.progress {
		progress = cli.NewProgressReporter(cmd.ErrOrStderr())
		progress.Start(len(args))
	}

	report := validationReport{Files: make([]fileResult, 0, len(args))}
	for _, path := range args {
		result := validateFile(cmd, path)
		report.Files = append(report.Files, result)
		if result.Valid {
			report.Valid++
		} else {
			report.Failed++
		}
		if progress != nil {
			var fileErr error
			if !result.Valid {
				fileErr = fmt.Errorf("%s", result.Error)
			}
			progress.Advance(path, fileErr)
		}
	}
	if progress != nil {
		progress.Finish()
	}

	if err := cli.NewFormatter(outputFormat).FormatTo(cmd.OutOrStdout(), report); err != nil {
		return cli.NewCommandError("validate", err)
	}
	if report.Failed > 0 {
		return cli.NewCommandError("validate", fmt.Errorf("%d of %d files are not valid", report.Failed, len(args)))
	}
	return nil
}

func validateFile(cmd *cobra.Command, path string) fileResult {
	result := fileResult{Path: path}
	ctx := logging.WithPath(cmd.Context(), path)

	format, err := resolveFormat(validateFlags.format, path, "")
	if err != nil {
		result.ErrorType = "format"
		result.Error = err.Error()
		return result
	}
	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		result.ErrorType = "io"
		result.Error = err.Error()
		return result
	}
	doc, err := decodeDocument(ctx, data, format)
	if err != nil {
		result.ErrorType = errorType(err)
		result.Error = err.Error()
		logger.WarnContext(ctx, "Document is not valid", "error", err)
		return result
	}

	result.Valid = true
	result.ItemID = doc.ID
	result.Actions = doc.Actions.Len()
	result.Restrictions = doc.RestrictionCount()
	return result
}
