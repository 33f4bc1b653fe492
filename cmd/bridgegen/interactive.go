package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scriptkit/bridgegen/batch"
	"github.com/scriptkit/bridgegen/render"
	"github.com/scriptkit/bridgegen/spec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	domainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type uiState int

const (
	stateSelect uiState = iota
	statePreview
)

type interactiveModel struct {
	err      error
	renderer *render.Renderer
	domains  []spec.Domain
	outDir   string
	status   string
	preview  viewport.Model
	selected int
	state    uiState
	width    int
	height   int
	ready    bool
}

func newInteractiveModel(catalog []spec.Domain, outDir string) interactiveModel {
	return interactiveModel{
		renderer: render.New(),
		domains:  catalog,
		outDir:   outDir,
	}
}

func (m interactiveModel) Init() tea.Cmd {
	return nil
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.preview = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.preview.Width = msg.Width
			m.preview.Height = msg.Height - 4
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateSelect:
			return m.updateSelect(msg)
		case statePreview:
			return m.updatePreview(msg)
		}
	}
	return m, nil
}

func (m interactiveModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.domains)-1 {
			m.selected++
		}
	case "enter":
		mod, err := m.renderer.Module(m.domains[m.selected])
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = ""
		m.preview.SetContent(string(mod.Text))
		m.preview.GotoTop()
		m.state = statePreview
	case "w":
		return m.writeSelected()
	}
	return m, nil
}

func (m interactiveModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateSelect
		return m, nil
	case "w":
		return m.writeSelected()
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m interactiveModel) writeSelected() (tea.Model, tea.Cmd) {
	d := m.domains[m.selected]
	targets := batch.TargetsFor([]spec.Domain{d}, m.outDir)
	report, err := batch.Run(targets, m.renderer)
	if err != nil {
		m.err = err
		m.status = ""
		return m, nil
	}
	m.err = nil
	m.status = fmt.Sprintf("wrote %s (%d functions)", report[0].Path, report[0].Functions)
	return m, nil
}

func (m interactiveModel) View() string {
	if !m.ready {
		return "loading..."
	}
	switch m.state {
	case statePreview:
		return m.viewPreview()
	default:
		return m.viewSelect()
	}
}

func (m interactiveModel) viewSelect() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("bridgegen domains"))
	b.WriteString("\n\n")

	for i, d := range m.domains {
		line := fmt.Sprintf("%-10s %2d functions  %s", d.Name, d.FunctionCount(), d.Description)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(domainStyle.Render("  " + line))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteByte('\n')
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("enter: preview • w: write • q: quit"))
	return b.String()
}

func (m interactiveModel) viewPreview() string {
	var b strings.Builder
	d := m.domains[m.selected]
	b.WriteString(titleStyle.Render(previewTitle(d)))
	b.WriteString("\n")
	b.WriteString(m.preview.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	} else {
		b.WriteString(helpStyle.Render("↑/↓: scroll • w: write • esc: back • q: quit"))
	}
	return b.String()
}

func previewTitle(d spec.Domain) string {
	return fmt.Sprintf("%s :: %s", render.Filename(d.Name), d.Description)
}

func runInteractive(catalog []spec.Domain, outDir string) error {
	p := tea.NewProgram(newInteractiveModel(catalog, outDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
