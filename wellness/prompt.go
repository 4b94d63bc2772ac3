package wellness

import (
	"fmt"
	"strings"
)

// Section is one of the eight required parts of a recommendation report.
type Section struct {
	Icon  string
	Title string
	Brief string
}

// Heading is the markdown heading that opens the section in a report.
func (s Section) Heading() string {
	return "## " + s.Icon + " " + s.Title
}

// Sections lists the report sections in the order they must appear.
var Sections = [8]Section{
	{Icon: "🧬", Title: "DOSHA CONSTITUTION", Brief: "Explain percentages and characteristics"},
	{Icon: "🌅", Title: "DAILY ROUTINE", Brief: "Personalized schedule based on dosha"},
	{Icon: "🍽️", Title: "DIET", Brief: "Foods to favor/limit, meal timing"},
	{Icon: "🧘", Title: "YOGA & EXERCISE", Brief: "Recommended practices"},
	{Icon: "🧠", Title: "STRESS MANAGEMENT", Brief: "Meditation and herbs"},
	{Icon: "🌿", Title: "HERBAL REMEDIES", Brief: "Specific herbs with dosages"},
	{Icon: "💫", Title: "LIFESTYLE ADJUSTMENTS", Brief: "Address key concerns"},
	{Icon: "📊", Title: "HEALTH ANALYSIS", Brief: "Analyze the metrics"},
}

const (
	reportTitle = "✨ YOUR PERSONALIZED AYURVEDIC HEALTH ANALYSIS"
	reportRule  = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

// SystemInstruction is sent with every remote recommendation request.
var SystemInstruction = buildSystemInstruction()

func buildSystemInstruction() string {
	var b strings.Builder
	b.WriteString("You are an Ayurvedic health consultant. Provide personalized recommendations in these 8 sections:\n\n")
	for _, s := range Sections {
		fmt.Fprintf(&b, "%s - %s\n", s.Heading(), s.Brief)
	}
	fmt.Fprintf(&b, "\nStart with %q then a dash line.\n", reportTitle)
	b.WriteString("Use markdown: bold with **, bullets with •. Be specific and personal.")
	return b.String()
}

// BuildPrompt renders the user prompt for the remote generator.
func BuildPrompt(p Profile, c Constitution) string {
	return fmt.Sprintf(`%s, %dy, %s | BMI: %.1f | Sleep: %d/10 | Stress: %d/10 | Digestion: %s | Exercise: %s

Dosha: Vata %d%% | Pitta %d%% | Kapha %d%% (Dominant: %s)

Please provide personalized Ayurvedic health recommendations for this person. Follow the exact formatting requirements specified.`,
		p.Name, p.Age, p.Gender, p.BMI(), p.SleepQuality, p.StressLevel, p.Digestion, p.Exercise,
		c.Vata, c.Pitta, c.Kapha, strings.ToUpper(string(c.Dominant())))
}
