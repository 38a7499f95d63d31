package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mindtree/pkg/graph"
	"github.com/matzehuels/mindtree/pkg/pipeline"
)

const maxLabelWidth = 32

var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	sideStyles   = map[string]lipgloss.Style{
		"right": lipgloss.NewStyle().Foreground(colorGreen),
		"left":  lipgloss.NewStyle().Foreground(colorBlue),
	}
)

// =============================================================================
// PreviewModel - Interactive layout browser
// =============================================================================

// PreviewModel is the bubbletea model that lists the boxes of a layout.
// Enter selects the highlighted box and quits.
type PreviewModel struct {
	Layout   graph.Layout
	Cursor   int
	Offset   int
	Height   int
	Selected *graph.Box

	parents map[string]string
}

// NewPreviewModel creates a preview of l.
func NewPreviewModel(l graph.Layout) PreviewModel {
	parents := make(map[string]string, len(l.Edges))
	for _, e := range l.Edges {
		parents[e.To] = e.From
	}
	return PreviewModel{Layout: l, Height: 15, parents: parents}
}

func (m PreviewModel) Init() tea.Cmd { return nil }

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown":
			m.move(m.Height)
		case "home", "g":
			m.move(-len(m.Layout.Boxes))
		case "end", "G":
			m.move(len(m.Layout.Boxes))
		case "enter":
			if len(m.Layout.Boxes) == 0 {
				return m, nil
			}
			b := m.Layout.Boxes[m.Cursor]
			m.Selected = &b
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.clampOffset()
	}
	return m, nil
}

func (m *PreviewModel) move(delta int) {
	if len(m.Layout.Boxes) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Layout.Boxes)-1)
	m.clampOffset()
}

func (m *PreviewModel) clampOffset() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m PreviewModel) View() string {
	var b strings.Builder

	title := m.Layout.Title
	if title == "" {
		title = "Layout"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(" " + listDimStyle.Render(fmt.Sprintf("%gx%g · %s", m.Layout.Width, m.Layout.Height, m.Layout.Engine)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Layout.Boxes))
	b.WriteString(boxTable(m.Layout.Boxes[m.Offset:end], m.Offset, m.Cursor).Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Layout.Boxes))))
	if len(m.Layout.Boxes) > 0 {
		box := m.Layout.Boxes[m.Cursor]
		if parent, ok := m.parents[box.ID]; ok {
			b.WriteString(listDimStyle.Render("  parent " + parent))
		}
	}
	return b.String()
}

// boxTable renders boxes as a table. offset is the index of boxes[0] in the
// full list and cursor the highlighted index (-1 for none).
func boxTable(boxes []graph.Box, offset, cursor int) *table.Table {
	rows := make([][]string, len(boxes))
	for i, bx := range boxes {
		marker := "  "
		if offset+i == cursor {
			marker = "▸ "
		}
		label := strings.Join(strings.Fields(bx.Label), " ")
		if r := []rune(label); len(r) > maxLabelWidth {
			label = string(r[:maxLabelWidth-1]) + "…"
		}
		rows[i] = []string{
			marker,
			strings.Repeat("  ", bx.Depth) + label,
			bx.Side,
			fmt.Sprintf("%g, %g", bx.X, bx.Y),
			fmt.Sprintf("%gx%g", bx.Width, bx.Height),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Side", "Center", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(boxes) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if col == 2 {
				if s, ok := sideStyles[boxes[row].Side]; ok {
					base = s
				}
			} else if col > 2 {
				base = base.Foreground(colorDim)
			}
			if offset+row == cursor {
				return base.Bold(true)
			}
			return base
		})
}

// =============================================================================
// preview command
// =============================================================================

func (c *CLI) previewCommand() *cobra.Command {
	var (
		plain bool
		lf    layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "preview [document]",
		Short: "Browse the computed layout of a document in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.baseOptions()
			lf.apply(cmd, &opts)
			l, err := c.computeLayout(cmd.Context(), args[0], opts, lf.noCache)
			if err != nil {
				return err
			}
			if plain {
				return printLayoutTable(cmd.OutOrStdout(), l)
			}
			return runPreview(cmd.Context(), l)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the table once instead of opening the browser")
	lf.register(cmd)
	return cmd
}

func (c *CLI) computeLayout(ctx context.Context, input string, opts pipeline.Options, noCache bool) (graph.Layout, error) {
	m, err := pipeline.ParseFile(input, opts)
	if err != nil {
		return graph.Layout{}, err
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return graph.Layout{}, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	return runner.ComputeLayout(ctx, m, opts)
}

func runPreview(ctx context.Context, l graph.Layout) error {
	p := tea.NewProgram(NewPreviewModel(l), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(PreviewModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}
	b := fm.Selected
	printKeyValue("id", b.ID)
	printKeyValue("text", b.Label)
	printKeyValue("side", b.Side)
	printKeyValue("depth", fmt.Sprint(b.Depth))
	printKeyValue("center", fmt.Sprintf("%g, %g", b.X, b.Y))
	printKeyValue("size", fmt.Sprintf("%gx%g", b.Width, b.Height))
	if b.Image != nil {
		printKeyValue("image", fmt.Sprintf("%gx%g %s", b.Image.Width, b.Image.Height, b.Image.Position))
	}
	return nil
}

func printLayoutTable(w io.Writer, l graph.Layout) error {
	_, err := fmt.Fprintln(w, boxTable(l.Boxes, 0, -1).Render())
	return err
}
