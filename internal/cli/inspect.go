package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mapgraph/mapgraph/pkg/graph"
	"github.com/mapgraph/mapgraph/pkg/maze"
)

// Inspector styles
var (
	inspectCursorStyle  = lipgloss.NewStyle().Reverse(true).Bold(true)
	inspectWallStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	inspectSpecialStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	inspectLoopStyle    = lipgloss.NewStyle().Foreground(colorYellow)
)

// newInspectCmd creates the inspect command: an interactive terminal
// browser over a map's cells and their outgoing transitions.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <map-file>",
		Short: "Browse a map's cells and transitions interactively",
		Long: `Browse a map interactively in the terminal.

Arrow keys (or hjkl) move the cursor across the map; the side panel shows
the selected cell's terrain and its outgoing transitions, with moves into
walls marked as bounces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGraph(cmd.Context(), args[0], maze.DefaultRowOrder)
			if err != nil {
				return err
			}
			model := newInspectModel(g)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return fmt.Errorf("inspector: %w", err)
			}
			return nil
		},
	}
}

// inspectModel is the bubbletea model for the map inspector.
// The cursor is stored in grid coordinates (y grows upward); key handling
// translates screen directions accordingly.
type inspectModel struct {
	grid  maze.Grid
	graph *graph.Graph
	x, y  int
}

func newInspectModel(g *graph.Graph) inspectModel {
	return inspectModel{grid: g.Grid(), graph: g}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.y < m.grid.Height()-1 {
				m.y++
			}
		case "down", "j":
			if m.y > 0 {
				m.y--
			}
		case "left", "h":
			if m.x > 0 {
				m.x--
			}
		case "right", "l":
			if m.x < m.grid.Width()-1 {
				m.x++
			}
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Map Inspector"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ move  q quit"))
	b.WriteString("\n\n")

	// Rows print top first, so iterate y downward.
	for y := m.grid.Height() - 1; y >= 0; y-- {
		b.WriteString("  ")
		for x := 0; x < m.grid.Width(); x++ {
			cell, _ := m.grid.Cell(x, y)
			b.WriteString(m.renderCell(cell))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPanel())
	return b.String()
}

// renderCell styles a single map character, highlighting the cursor.
func (m inspectModel) renderCell(c maze.Cell) string {
	s := string(c.Terrain.Rune())
	if c.X == m.x && c.Y == m.y {
		return inspectCursorStyle.Render(s)
	}
	switch c.Terrain {
	case maze.Wall:
		return inspectWallStyle.Render(s)
	case maze.Entrance, maze.Exit:
		return inspectSpecialStyle.Render(s)
	default:
		return s
	}
}

// renderPanel describes the selected cell and its outgoing transitions.
func (m inspectModel) renderPanel() string {
	var b strings.Builder

	cell, ok := m.grid.Cell(m.x, m.y)
	if !ok {
		return ""
	}

	b.WriteString(StyleValue.Render(fmt.Sprintf("(%d,%d)", cell.X, cell.Y)))
	b.WriteString(StyleDim.Render("  " + cell.Terrain.String()))
	b.WriteString("\n")

	edges, err := m.graph.EdgesOf(cell)
	if err != nil {
		b.WriteString(StyleWarning.Render(err.Error()))
		return b.String()
	}
	if len(edges) == 0 {
		b.WriteString(StyleDim.Render("  no outgoing transitions (wall)"))
		b.WriteString("\n")
		return b.String()
	}

	for _, e := range edges {
		line := fmt.Sprintf("  %-5s %s ", e.Dir, iconArrow)
		if e.IsSelfLoop() {
			b.WriteString(StyleDim.Render(line) + inspectLoopStyle.Render("bounce (wall)"))
		} else {
			b.WriteString(StyleDim.Render(line) + StyleValue.Render(fmt.Sprintf("(%d,%d)", e.To.X, e.To.Y)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
