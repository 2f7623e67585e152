package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RdoLimaJunior/cosmus/internal/galaxy"
	"github.com/RdoLimaJunior/cosmus/internal/performance"
)

const chatSystemPrompt = `You are Cosmo, a friendly AI study companion aboard a spaceship exploring the solar system. You help a student preparing for a science competition understand Physics, Chemistry, and Biology. Keep answers short, accurate, and encouraging. Use simple language and everyday analogies. When the student is studying a specific module, relate your answers to it.`

const summarySystemPrompt = `You are an encouraging performance coach. Analyze the student's practice scores across Biology, Chemistry, and Physics. Scores are out of 100. Provide a short, encouraging summary of 2-3 sentences at most. Comment on the overall trend and compare subjects: mention the strongest subject, any subject showing clear improvement, or one that needs more attention. Be positive and motivating.`

// buildChatContext prefixes the user's question with what they are
// currently studying, so answers stay on topic.
func buildChatContext(module *galaxy.CelestialBody, prompt string) string {
	var b strings.Builder
	if module != nil {
		b.WriteString(fmt.Sprintf(
			"The student is currently studying the %s module %q.",
			galaxy.SubjectDisplayName(module.Subject), module.Name))
	} else {
		b.WriteString("The student is exploring the app and has a general question.")
	}
	b.WriteString("\n\n")
	b.WriteString(prompt)
	return b.String()
}

func buildSummaryUserMessage(records []performance.Record, language string) string {
	var b strings.Builder

	data, err := json.Marshal(records)
	if err != nil {
		data = []byte("[]")
	}
	b.WriteString("Performance Data: ")
	b.Write(data)
	b.WriteString("\n\n")

	if language == "" {
		language = "English"
	}
	b.WriteString(fmt.Sprintf("Respond in %s.", language))

	return b.String()
}
