package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slub/librml/pkg/cli"
	"slub/librml/pkg/telemetry/logging"
	"slub/librml/pkg/template"
)

var templateFlags struct {
	dir     string
	output  string
	item    string
	tenant  string
	set     []string
	to      string
	out     string
	compact bool
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Work with document templates",
	Long: `List, inspect and render document templates.

Templates live in templates.dir (override with --dir). Each template file
has a "<name>.meta.json" sidecar with its id and variable descriptions.`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a template and its variables",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateRenderCmd = &cobra.Command{
	Use:   "render ID",
	Short: "Render a document from a template",
	Long: `Fill a template with values and print the resulting document.

Values are given as --set name=value. Integers and the literals true and
false are passed as numbers and booleans; everything else is a string.

Examples:
  librml template render embargo --item item-1 --tenant slub \
    --set fromdate=2030-01-01 --set count=3`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateRender,
}

var templateWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload templates as they change",
	Long: `Load the template directory and keep it loaded until interrupted,
logging every reload. Useful to check templates while editing them.

Templates are reloaded on templates.rescan_schedule and on file changes.
File change events are skipped when a schedule is set and templates.watch
is false.`,
	Args: cobra.NoArgs,
	RunE: runTemplateWatch,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd, templateShowCmd, templateRenderCmd, templateWatchCmd)

	templateCmd.PersistentFlags().StringVar(&templateFlags.dir, "dir", "", "template directory (default templates.dir)")
	templateListCmd.Flags().StringVar(&templateFlags.output, "output", "text", "output format: text, json, yaml")
	templateShowCmd.Flags().StringVar(&templateFlags.output, "output", "text", "output format: text, json, yaml")

	templateRenderCmd.Flags().StringVar(&templateFlags.item, "item", "", "item identifier of the rendered document")
	templateRenderCmd.Flags().StringVar(&templateFlags.tenant, "tenant", "", "tenant of the rendered document")
	templateRenderCmd.Flags().StringArrayVar(&templateFlags.set, "set", nil, "template value as name=value (repeatable)")
	templateRenderCmd.Flags().StringVar(&templateFlags.to, "to", "", "output format: json, yaml, cbor, xml (default output.format)")
	templateRenderCmd.Flags().StringVarP(&templateFlags.out, "out", "o", stdio, "output file (- for stdout)")
	templateRenderCmd.Flags().BoolVar(&templateFlags.compact, "compact", false, "do not indent JSON and XML output")
	_ = templateRenderCmd.MarkFlagRequired("item")
}

// loadTemplates creates a manager for the configured directory and loads it.
func loadTemplates() (*template.Manager, error) {
	cfg := appConfig.Templates
	if templateFlags.dir != "" {
		cfg.Dir = templateFlags.dir
	}
	manager := template.NewManager(cfg, logger, collector)
	if err := manager.Load(); err != nil {
		return nil, cli.NewConfigError("templates.dir", err.Error())
	}
	return manager, nil
}

type templateList []*template.Template

func (l templateList) String() string {
	if len(l) == 0 {
		return "no templates loaded"
	}
	var b strings.Builder
	for i, t := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-20s %s", t.ID, t.ReadableName)
	}
	return b.String()
}

type templateDetail struct {
	*template.Template
}

func (d templateDetail) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:          %s\n", d.ID)
	fmt.Fprintf(&b, "Name:        %s\n", d.ReadableName)
	fmt.Fprintf(&b, "Description: %s\n", d.Description)
	fmt.Fprintf(&b, "Path:        %s\n", d.Path)
	b.WriteString("Variables:")
	if len(d.Variables) == 0 {
		b.WriteString(" none")
	}
	for _, v := range d.Variables {
		fmt.Fprintf(&b, "\n  %s", v.Name)
		if v.Datatype != "" {
			fmt.Fprintf(&b, " (%s)", v.Datatype)
		}
		if v.ReadableName != "" {
			fmt.Fprintf(&b, ": %s", v.ReadableName)
		}
		if v.Source != "" {
			fmt.Fprintf(&b, " [source: %s]", v.Source)
		}
	}
	return b.String()
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(templateFlags.output)
	if err != nil {
		return err
	}
	manager, err := loadTemplates()
	if err != nil {
		return err
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), templateList(manager.List()))
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(templateFlags.output)
	if err != nil {
		return err
	}
	manager, err := loadTemplates()
	if err != nil {
		return err
	}
	t, err := manager.Get(args[0])
	if err != nil {
		return cli.NewCommandError("template show", err)
	}
	var data any = templateDetail{t}
	if format != cli.FormatText {
		data = t
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), data)
}

func runTemplateRender(cmd *cobra.Command, args []string) error {
	values, err := parseValues(templateFlags.set)
	if err != nil {
		return err
	}
	manager, err := loadTemplates()
	if err != nil {
		return err
	}

	ctx := logging.WithTemplateID(logging.WithItemID(cmd.Context(), templateFlags.item), args[0])
	doc, err := manager.Render(args[0], templateFlags.item, templateFlags.tenant, values)
	if err != nil {
		return cli.NewCommandError("template render", err)
	}
	logger.InfoContext(ctx, "Template rendered", "actions", doc.Actions.Len())

	return emitDocument(cmd, "template render", doc, templateFlags.to, templateFlags.out, templateFlags.compact)
}

// parseValues turns name=value pairs into template values.
func parseValues(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, cli.NewConfigError("--set", fmt.Sprintf("%q is not name=value", pair))
		}
		values[name] = parseValue(raw)
	}
	return values, nil
}

func parseValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}

func runTemplateWatch(cmd *cobra.Command, args []string) error {
	manager, err := loadTemplates()
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	scheduler := template.NewScheduler(manager, appConfig.Templates.RescanSchedule, logger)
	if err := scheduler.Start(ctx); err != nil {
		return cli.NewConfigError("templates.rescan_schedule", err.Error())
	}
	defer scheduler.Stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (%d templates), press Ctrl+C to stop\n", manager.Dir(), len(manager.IDs()))

	// Without templates.watch a configured schedule is the only reload
	// source, for file systems that deliver no change events.
	if !appConfig.Templates.Watch && appConfig.Templates.RescanSchedule != "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := template.NewWatcher(manager, appConfig.Templates.Debounce, logger)
	if err != nil {
		return cli.NewCommandError("template watch", err)
	}
	defer watcher.Stop()

	if err := watcher.Watch(ctx); err != nil {
		return cli.NewCommandError("template watch", err)
	}
	return nil
}
