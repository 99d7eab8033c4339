// Package cli wires the stagehand command tree.
//
// The CLI is a thin shell around pkg/pipeline: every command builds an
// Options value, hands it to a Runner, and prints the result. Flag
// parsing, logging setup, and cache placement live here; layout and
// rendering semantics do not.
package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stagehand/pkg/buildinfo"
	"github.com/matzehuels/stagehand/pkg/cache"
	"github.com/matzehuels/stagehand/pkg/pipeline"
)

const appName = "stagehand"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New constructs a CLI with a logger writing to stderr.
func New() *CLI {
	return &CLI{Logger: newLogger()}
}

// RootCommand assembles the full command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     appName,
		Short:   "Negotiate and render sequential box layouts",
		Long:    "Stagehand lays out labelled boxes on a rectangular stage by folding\neach item through a direction policy, then renders the result as text\nor JSON.",
		Version: buildinfo.String(),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	return root
}

// newRunner builds a pipeline runner, with an on-disk cache unless
// noCache is set.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("cache unavailable, continuing without", "error", err)
		return cache.NewNullCache(), nil
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("cache unavailable, continuing without", "error", err)
		return cache.NewNullCache(), nil
	}
	return store, nil
}

// cacheDir resolves the on-disk cache location, honoring XDG_CACHE_HOME.
func cacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats splits a comma-separated format list and validates each
// entry against the pipeline's known formats.
func parseFormats(s string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(strings.ToLower(f))
		if f == "" {
			continue
		}
		if err := pipeline.ValidateFormat(f); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		formats = []string{pipeline.FormatText}
	}
	return formats, nil
}
