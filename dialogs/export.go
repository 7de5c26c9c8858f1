package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-activity/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct{ Dir string }
	ExportCanceledMsg  struct{}
	ExportErrorMsg     struct{ Err error }
	ExportOKMsg        struct {
		Dir   string
		Files []string
	}
)

// Export asks for the directory the charts and the filtered data go to.
type Export struct {
	input   textinput.Model
	visible bool
	baseDir string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func NewExportDialog(defaultDir, baseDir string) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultDir
	ti.Prompt = "Export to: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultDir != "" {
		ti.SetValue(defaultDir)
	}
	ti.Focus()
	return &Export{input: ti, visible: true, baseDir: baseDir}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			val := d.input.Value()
			if val == "" {
				// fall back to placeholder if user left it blank
				val = d.input.Placeholder
			}
			if val == "" {
				return d, nil
			}
			dir := val
			if d.baseDir != "" && !filepath.IsAbs(dir) {
				dir = filepath.Join(d.baseDir, dir)
			}
			logging.Debugf("ExportDialog: confirmed %s", dir)
			d.visible = false
			return d, func() tea.Msg { return ExportConfirmedMsg{Dir: dir} }
		case "esc":
			d.visible = false
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)

	help := lipgloss.NewStyle().
		Faint(true).
		Render("writes activity/difference charts, filtered.csv and filtered.xlsx\nenter to export • esc to cancel")

	return box.Render(fmt.Sprintf("%s\n\n%s", d.input.View(), help))
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
