package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codegrade/codegrade/internal/app"
	"github.com/codegrade/codegrade/internal/core"
)

const asciiLogo = `
 ██████╗ ██████╗ ██████╗ ███████╗ ██████╗ ██████╗  █████╗ ██████╗ ███████╗
██╔════╝██╔═══██╗██╔══██╗██╔════╝██╔════╝ ██╔══██╗██╔══██╗██╔══██╗██╔════╝
██║     ██║   ██║██║  ██║█████╗  ██║  ███╗██████╔╝███████║██║  ██║█████╗
██║     ██║   ██║██║  ██║██╔══╝  ██║   ██║██╔══██╗██╔══██║██║  ██║██╔══╝
╚██████╗╚██████╔╝██████╔╝███████╗╚██████╔╝██║  ██║██║  ██║██████╔╝███████╗
 ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚══════╝

                AI REVIEWS FOR CODING ASSIGNMENTS
`

type sessionState int

const (
	stateBooting sessionState = iota
	stateForm
	stateReviewing
	stateResult
)

const (
	inputDescription = iota
	inputRepoURL
	inputLevel
	inputCount
)

type model struct {
	styles styles
	app    *app.App

	state      sessionState
	inputs     []textinput.Model
	focusIndex int

	viewport viewport.Model
	spinner  spinner.Model

	errText string
	width   int
	height  int
}

func initialModel(theme ThemeName) *model {
	styles := GetTheme(theme)

	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 500
		ti.Width = 60
		inputs[i] = ti
	}
	inputs[inputDescription].Placeholder = "Build a REST API for a todo list"
	inputs[inputDescription].Focus()
	inputs[inputRepoURL].Placeholder = "https://github.com/owner/repo"
	inputs[inputLevel].Placeholder = "Junior, Middle, or Senior"

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return &model{
		styles:  styles,
		state:   stateBooting,
		inputs:  inputs,
		spinner: sp,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			if m.state == stateForm {
				m.cycleFocus(1)
				return m, nil
			}
		case tea.KeyShiftTab, tea.KeyUp:
			if m.state == stateForm {
				m.cycleFocus(-1)
				return m, nil
			}
		case tea.KeyEnter:
			switch m.state {
			case stateForm:
				return m, m.submit()
			case stateResult:
				// Start over with the same form values.
				m.state = stateForm
				m.errText = ""
				return m, nil
			}
		}

	case appInitializedMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, tea.Quit
		}
		m.app = msg.app
		m.state = stateForm
		return m, nil

	case reviewCompleteMsg:
		if msg.err != nil {
			m.state = stateForm
			m.errText = msg.err.Error()
			return m, nil
		}
		m.state = stateResult
		m.errText = ""
		m.viewport.SetContent(msg.review)
		m.viewport.GotoTop()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.state == stateForm {
		for i := range m.inputs {
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	if m.state == stateResult {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.spinner, cmd = m.spinner.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) cycleFocus(delta int) {
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = (m.focusIndex + delta + inputCount) % inputCount
	m.inputs[m.focusIndex].Focus()
}

func (m *model) submit() tea.Cmd {
	req := &core.ReviewRequest{
		AssignmentDescription: strings.TrimSpace(m.inputs[inputDescription].Value()),
		GitHubRepoURL:         strings.TrimSpace(m.inputs[inputRepoURL].Value()),
		CandidateLevel:        strings.TrimSpace(m.inputs[inputLevel].Value()),
	}
	if vErr := req.Validate(); vErr != nil {
		m.errText = strings.Join(vErr.Messages, " ")
		return nil
	}

	m.state = stateReviewing
	m.errText = ""
	return tea.Batch(m.spinner.Tick, runReviewCmd(m.app, req))
}

func (m *model) View() string {
	switch m.state {
	case stateBooting:
		if m.errText != "" {
			return m.styles.error.Render("Initialization failed: " + m.errText)
		}
		return fmt.Sprintf("\n  %s starting CodeGrade...\n\n", m.spinner.View())

	case stateReviewing:
		return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.ascii.Render(asciiLogo),
			"",
			fmt.Sprintf("  %s Reviewing %s, this can take a minute...",
				m.spinner.View(), m.inputs[inputRepoURL].Value()),
		))

	case stateResult:
		return m.styles.app.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.viewport.Render(m.viewport.View()),
			m.styles.footer.Render(m.styles.inactive.Render("enter: new review │ esc: quit │ ↑/↓: scroll")),
		))

	default:
		return m.formView()
	}
}

func (m *model) formView() string {
	labels := [inputCount]string{"Assignment description", "GitHub repository URL", "Candidate level"}

	var b strings.Builder
	b.WriteString(m.styles.ascii.Render(asciiLogo))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString("  " + m.styles.label.Render(labels[i]) + "\n")
		b.WriteString("  " + m.inputs[i].View() + "\n\n")
	}
	if m.errText != "" {
		b.WriteString("  " + m.styles.error.Render(m.errText) + "\n\n")
	}
	b.WriteString(m.styles.footer.Render(m.styles.inactive.Render("tab: next field │ enter: review │ esc: quit")))

	return m.styles.app.Render(b.String())
}
