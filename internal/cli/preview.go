package cli

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stagehand/pkg/pipeline"
	"github.com/matzehuels/stagehand/pkg/scene"
)

func (c *CLI) previewCommand() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "preview [scene.toml]",
		Short: "Preview a layout interactively",
		Long: `Preview opens a terminal view that uses the window size as the stage
and re-negotiates the layout whenever the terminal is resized. Press
h, v or a to switch direction, q to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.items, "item", nil, "item label to place (repeatable)")
	cmd.Flags().StringVar(&opts.direction, "direction", pipeline.DefaultDirection, "stacking direction (horizontal, vertical, auto)")
	cmd.Flags().Float64Var(&opts.marginX, "margin-x", 0, "horizontal margin between items")
	cmd.Flags().Float64Var(&opts.marginY, "margin-y", 0, "vertical margin between rows")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, args []string, opts *renderOpts) error {
	var items []string
	direction := opts.direction
	marginX, marginY := opts.marginX, opts.marginY

	if len(args) == 1 {
		sc, err := scene.Load(args[0])
		if err != nil {
			return err
		}
		items = sc.Items
		if !cmd.Flags().Changed("direction") {
			direction = sc.Direction
		}
		if !cmd.Flags().Changed("margin-x") {
			marginX = sc.MarginX
		}
		if !cmd.Flags().Changed("margin-y") {
			marginY = sc.MarginY
		}
	} else {
		items = opts.items
	}
	if len(items) == 0 {
		return cmd.Help()
	}

	m := newPreviewModel(withLogger(cmd.Context(), c.Logger), items, direction, marginX, marginY)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// Bubbletea Model
// =============================================================================

var (
	previewFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
	previewHelp = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	previewErr  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type previewModel struct {
	ctx       context.Context
	items     []string
	direction string
	marginX   float64
	marginY   float64

	width   int
	height  int
	content string
	err     error
}

func newPreviewModel(ctx context.Context, items []string, direction string, marginX, marginY float64) previewModel {
	return previewModel{
		ctx:       ctx,
		items:     items,
		direction: direction,
		marginX:   marginX,
		marginY:   marginY,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "h":
			m.direction = scene.DirectionHorizontal
		case "v":
			m.direction = scene.DirectionVertical
		case "a":
			m.direction = scene.DirectionAuto
		default:
			return m, nil
		}
		m.relayout()
		return m, nil
	}
	return m, nil
}

// relayout re-runs the negotiation against the current terminal size.
// The frame, padding and help line eat into the stage rectangle.
func (m *previewModel) relayout() {
	stageW := float64(m.width - 6)
	stageH := float64(m.height - 5)
	if stageW < 4 || stageH < 3 {
		m.content, m.err = "", nil
		return
	}

	opts := pipeline.Options{
		Width:     stageW,
		Height:    stageH,
		Direction: m.direction,
		MarginX:   m.marginX,
		MarginY:   m.marginY,
		Items:     m.items,
		Formats:   []string{pipeline.FormatText},
	}
	layout, err := pipeline.GenerateLayout(m.ctx, opts)
	if err != nil {
		loggerFromContext(m.ctx).Debug("preview layout failed", "error", err)
		m.content, m.err = "", err
		return
	}
	artifacts, err := pipeline.RenderFromLayout(m.ctx, layout, opts)
	if err != nil {
		m.content, m.err = "", err
		return
	}
	m.content, m.err = strings.TrimRight(string(artifacts[pipeline.FormatText]), "\n"), nil
}

func (m previewModel) View() string {
	var body string
	switch {
	case m.err != nil:
		body = previewErr.Render(m.err.Error())
	case m.content == "":
		body = previewHelp.Render("terminal too small")
	default:
		body = m.content
	}

	help := previewHelp.Render("direction: " + m.direction + "  ·  h/v/a switch  ·  q quit")
	return previewFrame.Render(body) + "\n" + help + "\n"
}
