package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stagehand/pkg/pipeline"
	"github.com/matzehuels/stagehand/pkg/scene"
)

type renderOpts struct {
	items     []string
	width     float64
	height    float64
	direction string
	marginX   float64
	marginY   float64
	formats   string
	output    string
	noCache   bool
	refresh   bool
	quiet     bool
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Lay out a scene and render it",
		Long: `Render negotiates placements for a list of items and writes the
rendered artifacts. Items come from a scene manifest (TOML) given as
the argument, or from repeated --item flags.

With --output, artifacts are written next to each other as <name>.txt
and <name>.json. Without it, the text rendering goes to stdout.`,
		Example: `  stagehand render scene.toml
  stagehand render --item First --item "Second button" --width 40
  stagehand render scene.toml --format text,json --output out/layout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.items, "item", nil, "item label to place (repeatable)")
	cmd.Flags().Float64Var(&opts.width, "width", pipeline.DefaultWidth, "stage width")
	cmd.Flags().Float64Var(&opts.height, "height", pipeline.DefaultHeight, "stage height")
	cmd.Flags().StringVar(&opts.direction, "direction", pipeline.DefaultDirection, "stacking direction (horizontal, vertical, auto)")
	cmd.Flags().Float64Var(&opts.marginX, "margin-x", 0, "horizontal margin between items")
	cmd.Flags().Float64Var(&opts.marginY, "margin-y", 0, "vertical margin between rows")
	cmd.Flags().StringVar(&opts.formats, "format", pipeline.FormatText, "output formats, comma-separated (text, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path prefix (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the on-disk cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the run summary")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	pipeOpts, err := c.buildOptions(cmd, args, opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	done := progress(c.Logger, "pipeline")
	result, err := runner.Execute(withLogger(cmd.Context(), c.Logger), pipeOpts)
	done()
	if err != nil {
		return err
	}

	if opts.output == "" {
		return writeStdout(result, pipeOpts.Formats)
	}
	if err := writeArtifacts(result, opts.output); err != nil {
		return err
	}
	if !opts.quiet {
		printSuccess("rendered %d item(s)", result.Stats.ItemCount)
		printStats(result)
	}
	return nil
}

// buildOptions assembles pipeline options from a scene manifest or from
// inline flags. Flags explicitly set on the command line override the
// manifest's values.
func (c *CLI) buildOptions(cmd *cobra.Command, args []string, opts *renderOpts) (pipeline.Options, error) {
	var pipeOpts pipeline.Options
	if len(args) == 1 {
		sc, err := scene.Load(args[0])
		if err != nil {
			return pipeline.Options{}, err
		}
		pipeOpts = pipeline.FromScene(sc)
		c.Logger.Debug("loaded scene", "path", args[0], "items", len(pipeOpts.Items))
	} else {
		pipeOpts = pipeline.Options{
			Width:     opts.width,
			Height:    opts.height,
			Direction: opts.direction,
			MarginX:   opts.marginX,
			MarginY:   opts.marginY,
			Items:     opts.items,
		}
	}

	if len(args) == 1 {
		flags := cmd.Flags()
		if flags.Changed("width") {
			pipeOpts.Width = opts.width
		}
		if flags.Changed("height") {
			pipeOpts.Height = opts.height
		}
		if flags.Changed("direction") {
			pipeOpts.Direction = opts.direction
		}
		if flags.Changed("margin-x") {
			pipeOpts.MarginX = opts.marginX
		}
		if flags.Changed("margin-y") {
			pipeOpts.MarginY = opts.marginY
		}
		if len(opts.items) > 0 {
			pipeOpts.Items = opts.items
		}
	}

	formats, err := parseFormats(opts.formats)
	if err != nil {
		return pipeline.Options{}, err
	}
	pipeOpts.Formats = formats
	pipeOpts.Refresh = opts.refresh
	pipeOpts.Logger = c.Logger
	return pipeOpts, nil
}

// writeStdout prints artifacts to stdout: the text rendering as-is,
// then any other formats separated by a blank line.
func writeStdout(result *pipeline.Result, formats []string) error {
	for i, format := range formats {
		if i > 0 {
			fmt.Println()
		}
		data := result.Artifacts[format]
		os.Stdout.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Println()
		}
	}
	return nil
}

func writeArtifacts(result *pipeline.Result, prefix string) error {
	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	for format, data := range result.Artifacts {
		path := prefix + artifactExt(format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

func artifactExt(format string) string {
	switch strings.ToLower(format) {
	case pipeline.FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}
