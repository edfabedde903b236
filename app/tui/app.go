// Package tui is the terminal host for the guided forms. It follows the Elm
// architecture used by bubbletea: state in the model, transitions in Update,
// rendering in View.
package tui

import (
	"strings"
	"time"

	"kiisuite/app/config"
	"kiisuite/app/registry"
	"kiisuite/app/service/assistant"
	"kiisuite/app/service/forms"
	"kiisuite/app/service/queue"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/do"
)

type appState int

const (
	statePicker appState = iota
	stateChat
)

const typingFrameInterval = 300 * time.Millisecond

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).MarginBottom(1)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	timeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).MarginTop(1)
)

type replyMsg struct {
	event queue.Event
	ok    bool
}

type typingTickMsg struct{}

type toolItem struct {
	cfg registry.ToolConfig
}

func (i toolItem) Title() string { return i.cfg.Title }

func (i toolItem) Description() string {
	if len(i.cfg.Questions) > 0 {
		return "Guided form with Kii assistance"
	}

	return "Form with topic guidance"
}

func (i toolItem) FilterValue() string { return i.cfg.ID }

// App holds all UI state: which screen is active, the tool picker, and the
// chat widgets for the selected tool.
type App struct {
	cfg          *config.Config
	assistantSvc *assistant.Service
	formsSvc     *forms.Service
	queueSvc     *queue.Service

	state     appState
	picker    list.Model
	input     textinput.Model
	session   *assistant.Session
	toolID    string
	frame     int
	width     int
	height    int
	guided    bool
	statusMsg string
}

func NewApp(di *do.Injector) (*App, error) {
	cfg := do.MustInvoke[*config.Config](di)

	items := make([]list.Item, 0, len(registry.Tools()))
	for _, tool := range registry.Tools() {
		items = append(items, toolItem{cfg: tool})
	}

	picker := list.New(items, list.NewDefaultDelegate(), 0, 0)
	picker.Title = "⬡ KII · LEAN SIX SIGMA TOOLS"
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)

	input := textinput.New()
	input.Placeholder = "Tell Kii about your project..."
	input.CharLimit = 500

	app := &App{
		cfg:          cfg,
		assistantSvc: do.MustInvoke[*assistant.Service](di),
		formsSvc:     do.MustInvoke[*forms.Service](di),
		queueSvc:     do.MustInvoke[*queue.Service](di),
		state:        statePicker,
		picker:       picker,
		input:        input,
		guided:       cfg.GuidedModeEnabled(),
	}

	if id := strings.TrimSpace(cfg.UI.DefaultTool); id != "" {
		app.openTool(id)
	}

	return app, nil
}

func (a *App) Init() tea.Cmd {
	return a.waitForReply()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetSize(max(0, msg.Width-6), max(0, msg.Height-8))
		a.input.Width = max(20, a.chatWidth()-6)
		return a, nil

	case replyMsg:
		if !msg.ok {
			return a, nil
		}
		// Redraw; the transcript itself is re-read from the session.
		return a, a.waitForReply()

	case typingTickMsg:
		if a.session == nil || !a.session.Typing() {
			return a, nil
		}
		a.frame++
		return a, a.typingTick()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		if a.state == stateChat {
			a.state = statePicker
			a.statusMsg = ""
			return a, nil
		}
		return a, tea.Quit

	case "enter":
		if a.state == statePicker {
			item, ok := a.picker.SelectedItem().(toolItem)
			if !ok {
				return a, nil
			}
			a.openTool(item.cfg.ID)
			return a, a.typingTick()
		}
		return a, a.submitInput()

	case "ctrl+h":
		if a.state == stateChat {
			a.input.SetValue("How do I use this tool effectively?")
		}
		return a, nil

	case "ctrl+e":
		if a.state == stateChat {
			a.input.SetValue("Can you show me an example?")
		}
		return a, nil

	case "ctrl+n":
		if a.state == stateChat {
			a.input.SetValue("What should I tell you next?")
		}
		return a, nil

	case "ctrl+b":
		if a.state == stateChat {
			a.input.SetValue("Let's start from the beginning")
		}
		return a, nil

	case "ctrl+r":
		if a.state == stateChat {
			a.input.SetValue("Can you review what we have so far?")
		}
		return a, nil

	case "ctrl+s":
		if a.state == stateChat {
			a.formsSvc.SaveDraft(a.toolID)
			a.statusMsg = "Draft saving is not available yet"
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.state {
	case statePicker:
		a.picker, cmd = a.picker.Update(msg)
	case stateChat:
		a.input, cmd = a.input.Update(msg)
	}

	return a, cmd
}

func (a *App) openTool(toolID string) {
	a.toolID = strings.ToLower(strings.TrimSpace(toolID))
	a.session = a.assistantSvc.Session(a.toolID)
	a.state = stateChat
	a.statusMsg = ""
	a.input.SetValue("")
	a.input.Focus()
}

// submitInput forwards the chat box to the session. Data lines for the data
// tools are captured into the form directly instead of the conversation.
func (a *App) submitInput() tea.Cmd {
	text := a.input.Value()
	a.input.SetValue("")

	if rest, ok := strings.CutPrefix(strings.TrimSpace(text), "data:"); ok && isDataTool(a.toolID) {
		a.appendDataPoints(rest)
		return nil
	}

	a.session.Submit(text)

	return a.typingTick()
}

func (a *App) appendDataPoints(raw string) {
	lines := splitDataValues(raw)
	if len(lines) == 0 {
		return
	}

	form := a.formsSvc.Snapshot(a.toolID)
	existing := form.Fields["dataPoints"]
	if existing != "" {
		lines = append([]string{existing}, lines...)
	}

	a.formsSvc.SetField(a.toolID, "dataPoints", strings.Join(lines, "\n"))
	a.statusMsg = "Data captured - ask Kii to calculate statistics"
}

func (a *App) waitForReply() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-a.queueSvc.Channel()
		return replyMsg{event: event, ok: ok}
	}
}

func (a *App) typingTick() tea.Cmd {
	return tea.Tick(typingFrameInterval, func(time.Time) tea.Msg {
		return typingTickMsg{}
	})
}

func (a *App) View() string {
	switch a.state {
	case stateChat:
		return a.chatView()
	default:
		return headerStyle.Render("⬡ KII") + "\n" + a.picker.View() +
			hintStyle.Render("Enter → open tool    Esc → quit")
	}
}

func (a *App) chatWidth() int {
	width := a.width
	if width <= 0 {
		width = 100
	}
	if !a.guided {
		return width - 4
	}

	return width - formPanelWidth(width) - 6
}

func isDataTool(toolID string) bool {
	return toolID == "histogram" || toolID == "scatter-plot"
}

func splitDataValues(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t'
	})

	var result []string
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
