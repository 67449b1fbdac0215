package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slub/librml/pkg/cli"
	"slub/librml/pkg/telemetry/logging"
)

var convertFlags struct {
	in      string
	out     string
	from    string
	to      string
	compact bool
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a document between formats",
	Long: `Convert a LibRML document between JSON, YAML, CBOR and XML markup.

Formats are taken from --from/--to, or else from the file extensions
(.json, .yaml/.yml, .cbor, .xml). Standard input and output are used when
--in or --out is "-" or omitted; the output format then defaults to
output.format from the configuration.

Examples:
  # JSON to markup
  librml convert --in doc.json --out doc.xml

  # Markup from stdin to compact JSON on stdout
  cat doc.xml | librml convert --from xml --to json --compact`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFlags.in, "in", "i", stdio, "input file (- for stdin)")
	convertCmd.Flags().StringVarP(&convertFlags.out, "out", "o", stdio, "output file (- for stdout)")
	convertCmd.Flags().StringVar(&convertFlags.from, "from", "", "input format: json, yaml, cbor, xml")
	convertCmd.Flags().StringVar(&convertFlags.to, "to", "", "output format: json, yaml, cbor, xml")
	convertCmd.Flags().BoolVar(&convertFlags.compact, "compact", false, "do not indent JSON and XML output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, err := resolveFormat(convertFlags.from, convertFlags.in, "")
	if err != nil {
		return err
	}
	defaultOut, err := defaultOutputFormat()
	if err != nil {
		return err
	}
	to, err := resolveFormat(convertFlags.to, convertFlags.out, defaultOut)
	if err != nil {
		return err
	}

	ctx := logging.WithPath(cmd.Context(), convertFlags.in)

	data, err := readInput(convertFlags.in, cmd.InOrStdin())
	if err != nil {
		return cli.NewCommandError("convert", fmt.Errorf("failed to read input: %w", err))
	}
	doc, err := decodeDocument(ctx, data, from)
	if err != nil {
		return cli.NewCommandError("convert", err)
	}
	out, err := encodeDocument(ctx, doc, to, outputIndent(convertFlags.compact))
	if err != nil {
		return cli.NewCommandError("convert", err)
	}
	if err := writeOutput(convertFlags.out, cmd.OutOrStdout(), out); err != nil {
		return cli.NewCommandError("convert", fmt.Errorf("failed to write output: %w", err))
	}

	logger.InfoContext(ctx, "Document converted",
		"item_id", doc.ID,
		"from", from,
		"to", to,
		"out", convertFlags.out,
	)
	return nil
}
