package wellness

import (
	"fmt"
	"strings"
)

// MinWaterLiters is the daily intake below which hydration advice is added.
const MinWaterLiters = 2.5

// RenderLocal builds the full eight-section report without any remote call.
// Identical input always yields identical output.
func RenderLocal(p Profile, c Constitution) string {
	d := c.Dominant()

	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(reportRule + "\n\n")
	fmt.Fprintf(&b, "**Hello %s!**\n\n", p.Name)

	bodies := [len(Sections)]string{
		constitutionSection(c, d),
		routineSection(d),
		dietSection(d),
		yogaSection(d),
		stressSection(d),
		herbalSection(d),
		lifestyleSection(p),
		analysisSection(p),
	}
	for i, s := range Sections {
		b.WriteString(s.Heading() + "\n")
		b.WriteString(bodies[i])
	}
	return b.String()
}

func constitutionSection(c Constitution, d Dosha) string {
	var b strings.Builder
	b.WriteString("Your Ayurvedic constitution shows:\n")
	fmt.Fprintf(&b, "• **Vata (Air/Ether):** %d%%\n", c.Vata)
	fmt.Fprintf(&b, "• **Pitta (Fire/Water):** %d%%\n", c.Pitta)
	fmt.Fprintf(&b, "• **Kapha (Water/Earth):** %d%%\n\n", c.Kapha)
	fmt.Fprintf(&b, "Your dominant constitution is **%s**.\n\n", strings.ToUpper(string(d)))
	return b.String()
}

func routineSection(d Dosha) string {
	switch d {
	case Vata:
		return "As a **Vata person**, you thrive on routine and warmth:\n\n" +
			"**Morning:** Rise at 6:00 AM and sip warm water with lemon\n" +
			"**Exercise:** Gentle yoga such as Yin or slow flows, ideally in the morning\n" +
			"**Meals:** Eat warm cooked food at the same times every day\n" +
			"**Evening:** Wind down by 9:00 PM and keep screens off after 8 PM\n" +
			"**Self-massage (Abhyanga):** Warm sesame oil before the morning shower\n\n"
	case Pitta:
		return "As a **Pitta person**, you need cooling and moderation:\n\n" +
			"**Morning:** Rise at 5:30 AM with cool (not iced) water\n" +
			"**Exercise:** Moderate intensity during the cooler hours of the day\n" +
			"**Meals:** Eat in calm surroundings and go easy on spicy dishes\n" +
			"**Evening:** Relaxing activities and a short, gentle meditation\n" +
			"**Self-massage:** Afternoon massage with cooling coconut oil\n\n"
	default:
		return "As a **Kapha person**, you need stimulation and movement:\n\n" +
			"**Morning:** Rise at 5:00 AM and energize with warm lemon water\n" +
			"**Exercise:** Vigorous yoga, running or dancing, every single day\n" +
			"**Meals:** Eat moderately and favor light, spiced food\n" +
			"**Evening:** Stay active but protect your sleep window\n" +
			"**Self-massage:** Morning massage with stimulating mustard oil\n\n"
	}
}

func dietSection(d Dosha) string {
	switch d {
	case Vata:
		return "**Foods to Favor:**\n" +
			"• Warm cooked grains: rice, wheat, oats\n" +
			"• Nourishing oils: ghee, sesame oil\n" +
			"• Root vegetables: carrots, beets, sweet potatoes\n" +
			"• Warming spices: ginger, cumin, cinnamon\n" +
			"• Healthy fats: avocado, nuts, seeds\n\n" +
			"**Foods to Limit:**\n" +
			"• Raw vegetables and salads\n" +
			"• Cold food and iced drinks\n" +
			"• Dry snacks such as crackers and popcorn\n" +
			"• Excess caffeine\n\n" +
			"**Meal Timing:** Three regular meals a day, never skipped\n\n"
	case Pitta:
		return "**Foods to Favor:**\n" +
			"• Cooling grains: basmati rice, oats, barley\n" +
			"• Cooling oils: coconut oil, ghee\n" +
			"• Leafy greens and fresh vegetables\n" +
			"• Mild herbs: fennel, cilantro, mint\n" +
			"• Sweet fruits: mango, coconut, dates\n\n" +
			"**Foods to Limit:**\n" +
			"• Spicy and fermented food\n" +
			"• Alcohol and caffeine\n" +
			"• Sour food\n" +
			"• Heavy, fried meals\n\n" +
			"**Meal Timing:** Largest meal at lunch, light dinner before 7 PM\n\n"
	default:
		return "**Foods to Favor:**\n" +
			"• Light grains: millet, quinoa, corn\n" +
			"• Pungent spices: black pepper, ginger, cayenne\n" +
			"• Leafy greens and light vegetables\n" +
			"• Legumes: lentils, mung beans\n" +
			"• Raw honey in moderation\n\n" +
			"**Foods to Limit:**\n" +
			"• Heavy oils and fried food\n" +
			"• Sweet and sour food\n" +
			"• Cold food\n" +
			"• Large amounts of milk and cheese\n\n" +
			"**Meal Timing:** Two to three smaller meals, no snacking in between\n\n"
	}
}

func yogaSection(d Dosha) string {
	switch d {
	case Vata:
		return "**Recommended Yoga Practice:**\n" +
			"• Style: Yin, restorative and grounding flows\n" +
			"• Duration: 30-45 minutes, 3-4 times per week\n" +
			"• Key poses: Child's pose, forward folds, legs up the wall\n" +
			"• Pranayama: Nadi Shodhana (alternate nostril breathing), 5 minutes daily\n" +
			"• Best time: Early morning (5:30-7:00 AM)\n\n"
	case Pitta:
		return "**Recommended Yoga Practice:**\n" +
			"• Style: Cooling flows, moon salutations, gentle vinyasa\n" +
			"• Duration: 45-60 minutes, 4-5 times per week\n" +
			"• Key poses: Cat-cow, Warrior II, Moon Salutation\n" +
			"• Pranayama: Sitali (cooling breath), 5-10 minutes daily\n" +
			"• Best time: Early morning or after 6 PM\n\n"
	default:
		return "**Recommended Yoga Practice:**\n" +
			"• Style: Vigorous flows, power yoga, dynamic sequences\n" +
			"• Duration: 60 minutes, 5-6 times per week\n" +
			"• Key poses: Sun Salutations, Warrior series, inversions\n" +
			"• Pranayama: Bhastrika (bellows breath), 3-5 minutes daily\n" +
			"• Best time: Early morning (5:30-6:30 AM)\n\n"
	}
}

func stressSection(d Dosha) string {
	switch d {
	case Vata:
		return "**For Balance:**\n" +
			"• Meditation: 10-15 minutes of grounding practice daily\n" +
			"• Technique: Rest attention on a steady object or mantra\n" +
			"• Aromatherapy: sandalwood, frankincense\n" +
			"• Practice: Foot massage before bed\n" +
			"• Herbs: Ashwagandha and Brahmi (500mg twice daily)\n\n"
	case Pitta:
		return "**For Balance:**\n" +
			"• Meditation: 15-20 minutes of cooling practice daily\n" +
			"• Technique: Visualize cool water or open sky\n" +
			"• Aromatherapy: rose, lavender, coconut\n" +
			"• Practice: Gentle massage with cooling oils\n" +
			"• Herbs: Brahmi and Shatavari (400mg twice daily)\n\n"
	default:
		return "**For Balance:**\n" +
			"• Meditation: 20-30 minutes of energizing practice daily\n" +
			"• Technique: Mantra or active visualization\n" +
			"• Aromatherapy: ginger, black pepper\n" +
			"• Practice: Brisk self-massage with warming oils\n" +
			"• Herbs: Tulsi and Guggul (600mg twice daily)\n\n"
	}
}

func herbalSection(d Dosha) string {
	switch d {
	case Vata:
		return "**Beneficial Herbs:**\n" +
			"• Ashwagandha: 500mg twice daily (grounding)\n" +
			"• Brahmi: 300mg daily (calming)\n" +
			"• Ginger-cinnamon tea with warm milk before bed\n" +
			"• Sesame oil massage three times a week\n" +
			"• Triphala: 1 tsp at night for gentle digestion\n\n"
	case Pitta:
		return "**Beneficial Herbs:**\n" +
			"• Brahmi: 400mg daily (cooling)\n" +
			"• Shatavari: 500mg twice daily (balancing)\n" +
			"• Rose and mint tea with honey\n" +
			"• Coconut oil massage three times a week\n" +
			"• Amalaki: 1000mg daily\n\n"
	default:
		return "**Beneficial Herbs:**\n" +
			"• Tulsi: 500mg twice daily (energizing)\n" +
			"• Guggul: 500mg twice daily (stimulating)\n" +
			"• Ginger-turmeric tea with black pepper\n" +
			"• Mustard oil massage twice a week\n" +
			"• Trikatu: 250mg twice daily for digestion\n\n"
	}
}

func lifestyleSection(p Profile) string {
	var b strings.Builder
	b.WriteString("**General Wellness Tips:**\n\n")

	if p.SleepQuality < 5 {
		b.WriteString("⚠️ **Sleep Issue Detected:** Your sleep quality is low. Consider:\n" +
			"  • A fixed bedtime, even on weekends\n" +
			"  • No screens for an hour before bed\n" +
			"  • Calming oils such as lavender or brahmi\n" +
			"  • A short relaxation routine before sleep\n\n")
	}
	if p.StressLevel > 7 {
		b.WriteString("⚠️ **High Stress Detected:** Build in daily recovery:\n" +
			"  • 15-20 minutes of meditation\n" +
			"  • Regular exercise or yoga\n" +
			"  • Breathing exercises (Pranayama)\n" +
			"  • Enough rest and recreation\n\n")
	}
	if p.Digestion == DigestionPoor {
		b.WriteString("⚠️ **Digestion Concern:** Strengthen your digestive fire (Agni):\n" +
			"  • Eat at regular times\n" +
			"  • Skip cold water with meals\n" +
			"  • Cook with warming spices\n" +
			"  • Ginger tea 15 minutes before meals\n\n")
	}
	if p.Exercise == ExerciseNone {
		b.WriteString("🏃 **Exercise:** Start with 20-30 minutes of light activity daily\n" +
			"  • Walking is an excellent first step\n" +
			"  • Increase intensity gradually\n" +
			"  • Time your sessions to suit your dosha\n\n")
	}
	if p.WaterIntake < MinWaterLiters {
		fmt.Fprintf(&b, "💧 **Hydration:** You drink %.1f L a day; aim for 2-3 liters\n", p.WaterIntake)
		b.WriteString("  • Prefer warm water to cold\n" +
			"  • A pinch of rock salt helps with electrolytes\n\n")
	}
	if p.Location != "" {
		fmt.Fprintf(&b, "📍 **For Your Location (%s):**\n", p.Location)
		b.WriteString("  • Adapt routines to your local climate\n" +
			"  • Use seasonal fruits and vegetables\n" +
			"  • Choose oils that are available locally\n\n")
	}
	return b.String()
}

func analysisSection(p Profile) string {
	var b strings.Builder
	b.WriteString("Your Current Health Status:\n\n")

	fmt.Fprintf(&b, "**Sleep Quality:** %d/10\n", p.SleepQuality)
	switch {
	case p.SleepQuality < 5:
		b.WriteString("⚠️ Needs improvement\n")
	case p.SleepQuality < 7:
		b.WriteString("⚠️ Can be better\n")
	default:
		b.WriteString("✅ Good\n")
	}
	b.WriteString("• Aim for 7-9 hours daily\n• A consistent schedule helps\n\n")

	fmt.Fprintf(&b, "**Stress Level:** %d/10\n", p.StressLevel)
	switch {
	case p.StressLevel < 4:
		b.WriteString("✅ Healthy\n")
	case p.StressLevel < 7:
		b.WriteString("⚠️ Moderate\n")
	default:
		b.WriteString("⚠️ High - needs attention\n")
	}
	b.WriteString("• Regular meditation lowers stress\n• Exercise is highly beneficial\n\n")

	fmt.Fprintf(&b, "**Digestion Quality:** %s\n", p.Digestion)
	b.WriteString("• Eat warm, cooked food\n• Follow the meal timing above\n\n")

	fmt.Fprintf(&b, "**Appetite Level:** %s\n", p.Appetite)
	b.WriteString("• Keep eating patterns consistent\n• Eat only when hungry\n\n")

	bmi := p.BMI()
	fmt.Fprintf(&b, "**BMI Status:** %.1f\n", bmi)
	b.WriteString(bmiAdvice(bmi) + "\n\n")
	return b.String()
}

func bmiAdvice(bmi float64) string {
	category := BMICategory(bmi)
	switch category {
	case "Underweight":
		return category + " - focus on nourishment"
	case "Healthy weight":
		return "✅ " + category
	case "Overweight":
		return category + " - increase activity"
	default:
		return category + " - seek professional guidance"
	}
}
