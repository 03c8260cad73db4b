package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/oliverbestmann/rcore/glimpse"
	"github.com/oliverbestmann/rcore/rcore"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List connected monitors",
	Long: `Lists the monitors reported by the windowing system with their
position, video mode and physical size. The monitor a new window
would be placed on is highlighted.`,
	Args: cobra.NoArgs,
	RunE: runMonitors,
}

func runMonitors(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	core := rcore.NewCoreData(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	core.Window.Flags = rcore.FlagWindowHidden

	win, err := glimpse.NewWindow(core)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Close()

	count := core.GetMonitorCount()
	if count == 0 {
		fmt.Println("No monitors connected.")
		return nil
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))

	fmt.Print(renderMonitors(core, count, styled))
	return nil
}

func renderMonitors(core *rcore.CoreData, count int, styled bool) string {
	current := core.GetCurrentMonitor()

	header, highlight, dim := headerStyle, currentStyle, dimStyle
	if !styled {
		header, highlight, dim = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	rows := [][]string{
		{"#", "Name", "Position", "Mode", "Physical"},
	}

	for idx := range count {
		pos := core.GetMonitorPosition(idx)

		rows = append(rows, []string{
			strconv.Itoa(idx),
			core.GetMonitorName(idx),
			fmt.Sprintf("%d,%d", pos.X, pos.Y),
			fmt.Sprintf("%dx%d@%dHz", core.GetMonitorWidth(idx), core.GetMonitorHeight(idx), core.GetMonitorRefreshRate(idx)),
			fmt.Sprintf("%dx%dmm", core.GetMonitorPhysicalWidth(idx), core.GetMonitorPhysicalHeight(idx)),
		})
	}

	// column widths
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for col, cell := range row {
			widths[col] = max(widths[col], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder

	for idx, row := range rows {
		style := lipgloss.NewStyle()

		switch {
		case idx == 0:
			style = header
		case idx-1 == current:
			style = highlight
		}

		cells := make([]string, len(row))
		for col, cell := range row {
			cells[col] = cellStyle.Width(widths[col] + 2).Render(cell)
		}

		sb.WriteString(style.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...)))
		sb.WriteString("\n")
	}

	sb.WriteString(dim.Render(fmt.Sprintf("window is on monitor %d", current)))
	sb.WriteString("\n")

	return sb.String()
}
