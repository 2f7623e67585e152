package study

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RdoLimaJunior/cosmus/internal/assistant"
	"github.com/RdoLimaJunior/cosmus/internal/llm"
	"github.com/RdoLimaJunior/cosmus/internal/screen"
	"github.com/RdoLimaJunior/cosmus/internal/ui/theme"
)

// sendPrompt submits the typed question and starts streaming an answer.
func (s *StudyScreen) sendPrompt() (screen.Screen, tea.Cmd) {
	if s.streaming {
		return s, nil
	}

	prompt := s.chatInput.Value()
	if prompt == "" {
		return s, nil
	}

	if s.asst == nil {
		s.chatHistory = append(s.chatHistory,
			assistant.ChatMessage{Role: llm.RoleUser, Content: prompt},
			assistant.ChatMessage{Role: llm.RoleAssistant, Content: assistant.FallbackMessage},
		)
		s.chatInput.Reset()
		return s, nil
	}

	// Prior turns, before the placeholder for the streamed answer.
	history := make([]assistant.ChatMessage, len(s.chatHistory))
	copy(history, s.chatHistory)

	s.chatHistory = append(s.chatHistory,
		assistant.ChatMessage{Role: llm.RoleUser, Content: prompt},
		assistant.ChatMessage{Role: llm.RoleAssistant, Content: ""},
	)
	s.chatInput.Reset()
	s.streaming = true

	events := make(chan chatEventMsg, 16)
	s.events = events

	asst := s.asst
	body := s.body
	go func() {
		err := asst.Chat(context.Background(), prompt, history, &body, func(chunk string) error {
			events <- chatEventMsg{chunk: chunk}
			return nil
		})
		events <- chatEventMsg{err: err, done: true}
		close(events)
	}()

	return s, s.nextChatEvent()
}

// nextChatEvent waits for the next streaming event.
func (s *StudyScreen) nextChatEvent() tea.Cmd {
	events := s.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return ev
	}
}

func (s *StudyScreen) handleChatEvent(msg chatEventMsg) (screen.Screen, tea.Cmd) {
	if msg.done {
		s.streaming = false
		if msg.err != nil {
			s.setLastAssistantMessage(assistant.FallbackMessage)
		}
		return s, nil
	}

	last := len(s.chatHistory) - 1
	if last >= 0 && s.chatHistory[last].Role == llm.RoleAssistant {
		s.chatHistory[last].Content += msg.chunk
	}

	return s, s.nextChatEvent()
}

func (s *StudyScreen) setLastAssistantMessage(content string) {
	last := len(s.chatHistory) - 1
	if last >= 0 && s.chatHistory[last].Role == llm.RoleAssistant {
		s.chatHistory[last].Content = content
	}
}

// renderChat draws the chat transcript and input box.
func (s *StudyScreen) renderChat(width, height int) string {
	youStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	cosmoStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	textStyle := lipgloss.NewStyle().Width(width).Foreground(theme.Text)

	var b strings.Builder
	for _, m := range s.chatHistory {
		if m.Role == llm.RoleUser {
			b.WriteString(youStyle.Render("You: "))
		} else {
			b.WriteString(cosmoStyle.Render("Cosmo: "))
		}
		content := m.Content
		if content == "" {
			content = "..."
		}
		b.WriteString(textStyle.Render(content) + "\n")
	}

	transcript := b.String()

	// Keep only the lines that fit above the input.
	lines := strings.Split(strings.TrimRight(transcript, "\n"), "\n")
	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	return theme.Card.Width(width).Render(
		strings.Join(lines, "\n") + "\n\n" + s.chatInput.View(),
	)
}
