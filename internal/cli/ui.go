package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stagehand/pkg/pipeline"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func printSuccess(format string, args ...any) {
	fmt.Println(successStyle.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	fmt.Println(infoStyle.Render("→") + " " + fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Println("  " + detailStyle.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + fileStyle.Render(path))
}

// printStats summarizes a pipeline run: counts, timings, and which
// stages were served from cache.
func printStats(result *pipeline.Result) {
	printDetail("items: %d, formats: %d", result.Stats.ItemCount, len(result.Artifacts))
	printDetail("layout: %s (cached: %t), render: %s (cached: %t)",
		result.Stats.LayoutTime.Round(time.Microsecond), result.CacheInfo.LayoutHit,
		result.Stats.RenderTime.Round(time.Microsecond), result.CacheInfo.RenderHit)
}
