// Package tui provides an interactive browser over evaluated profiles.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"proofbench/internal/evaluate"
)

const hashPreviewLen = 12

var (
	detailStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is a bubbletea model showing one table row per evaluation snapshot,
// with the selected profile's description and full hash below the table.
type Model struct {
	table     table.Model
	snapshots []evaluate.Snapshot
}

// New builds the browse model from pre-computed snapshots. Evaluation
// already happened — the model only renders.
func New(snapshots []evaluate.Snapshot) Model {
	columns := []table.Column{
		{Title: "Name", Width: 36},
		{Title: "Family", Width: 32},
		{Title: "Index", Width: 7},
		{Title: "Hash", Width: hashPreviewLen},
	}
	rows := make([]table.Row, len(snapshots))
	for i, s := range snapshots {
		rows[i] = table.Row{
			s.Profile.Name,
			s.Profile.Family,
			fmt.Sprintf("%.2f", s.QualityIndex),
			hashPreview(s.MetadataHash),
		}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)
	return Model{table: t, snapshots: snapshots}
}

func hashPreview(h string) string {
	if len(h) <= hashPreviewLen {
		return h
	}
	return h[:hashPreviewLen]
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	detail := ""
	if i := m.table.Cursor(); i >= 0 && i < len(m.snapshots) {
		s := m.snapshots[i]
		detail = detailStyle.Render(fmt.Sprintf("%s\nhash %s", s.Profile.Description, s.MetadataHash))
	}
	return m.table.View() + "\n" + detail + "\n" + helpStyle.Render("↑/↓ select · q quit") + "\n"
}
