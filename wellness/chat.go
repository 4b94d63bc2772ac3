package wellness

import (
	"fmt"
	"strings"
)

// ChatTurn is a single message in a sage conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "sage"
	Content string `json:"content"`
}

// SageInstruction is the system instruction for the yoga sage chat.
const SageInstruction = `You are the AYUSH AI Sage, a calm and knowledgeable guide in Yoga and Ayurveda.
Rules:
1. Keep answers short: three to five sentences.
2. Relate every answer back to the pose the user is currently practicing when one is given.
3. Offer gentle, safe guidance and suggest seeing a professional for medical concerns.
4. Never claim to diagnose or cure.`

// maxHistory bounds how many previous turns are replayed to the generator.
const maxHistory = 10

// BuildSagePrompt renders the user prompt for a chat turn. poseContext names
// the pose the user is practicing and may be empty.
func BuildSagePrompt(poseContext string, history []ChatTurn, message string) string {
	var b strings.Builder
	if poseContext != "" {
		fmt.Fprintf(&b, "Current pose: %s\n\n", poseContext)
	}
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, t := range history {
			fmt.Fprintf(&b, "%s: %s\n", t.Role, t.Content)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "user: %s", message)
	return b.String()
}
