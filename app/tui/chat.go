package tui

import (
	"fmt"
	"strings"

	"kiisuite/app/registry"
	"kiisuite/app/service/assistant"

	"github.com/charmbracelet/lipgloss"
)

var typingFrames = []string{"·", "··", "···"}

func (a *App) chatView() string {
	tool := registry.Get(a.toolID)

	var b strings.Builder
	b.WriteString(headerStyle.Render("⬡ Kii · " + tool.Title))
	b.WriteString("\n")
	b.WriteString(a.transcriptView())
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	if a.statusMsg != "" {
		b.WriteString("\n" + timeStyle.Render(a.statusMsg))
	}
	b.WriteString(hintStyle.Render("Enter → send    ^H help    ^E example    ^N next    ^R review    Esc → tools"))

	chat := lipgloss.NewStyle().Width(a.chatWidth()).Render(b.String())
	if !a.guided {
		return chat
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, chat, "  ", a.formView())
}

func (a *App) transcriptView() string {
	var lines []string

	for _, msg := range a.session.Transcript() {
		label := assistantStyle.Render("Kii")
		if msg.Role == assistant.RoleUser {
			label = userStyle.Render("You")
		}

		stamp := timeStyle.Render(msg.Timestamp.Format("15:04"))
		lines = append(lines, fmt.Sprintf("%s %s\n%s", label, stamp, msg.Text))
	}

	if a.session.Typing() {
		frame := typingFrames[a.frame%len(typingFrames)]
		lines = append(lines, assistantStyle.Render("Kii")+" "+timeStyle.Render("is typing "+frame))
	}

	body := strings.Join(lines, "\n\n")

	return lipgloss.NewStyle().Width(a.chatWidth() - 2).Render(body)
}
