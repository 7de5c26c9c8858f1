package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/siftly-activity/logging"
)

const (
	helpWidth    = 60
	helpKeyWidth = 14
)

// Help lists key bindings plus a short description of the mouse controls.
type Help struct {
	visible  bool
	bindings []key.Binding
	mouse    []string
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a new help dialog showing the given bindings.
func NewHelpDialog(bindings []key.Binding, mouse ...string) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
		mouse:    mouse,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			logging.Debugf("HelpDialog: closed with %q", m.String())
			d.visible = false
			return d, nil
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(helpWidth)

	var lines []string
	descWidth := helpWidth - 4 - helpKeyWidth - 1
	for _, b := range d.bindings {
		h := b.Help()
		desc := wordwrap.String(h.Desc, descWidth)
		// continuation lines line up under the description column
		desc = strings.TrimLeft(indent.String(desc, uint(helpKeyWidth+1)), " ")
		lines = append(lines, fmt.Sprintf("%-*s %s", helpKeyWidth, h.Key, desc))
	}
	if len(d.mouse) > 0 {
		lines = append(lines, "", "Mouse")
		for _, s := range d.mouse {
			lines = append(lines, wordwrap.String("  "+s, helpWidth-4))
		}
	}

	hint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	return box.Render(fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), hint))
}

func (d *Help) Show() {
	d.visible = true
}

func (d *Help) Hide() {
	d.visible = false
}

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
