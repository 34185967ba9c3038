package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourishdey2005/Annaprasanna/models"
)

// EmptyJournal is returned instead of an empty document when no meals exist.
const EmptyJournal = "No meals recorded in your journal yet."

// MinProfileMeals is the history length required before a profile is worth
// generating. Enforced by callers; GenerateProfile itself stays total and
// simply produces a thin document on smaller histories.
const MinProfileMeals = 30

// GenerateJournal renders the full history as a chronological text journal:
// dates ascending, meals within a date ascending by timestamp. Pure string
// building, no side effects.
func GenerateJournal(meals []models.MealRecord) string {
	if len(meals) == 0 {
		return EmptyJournal
	}

	grouped := map[string][]models.MealRecord{}
	for _, m := range meals {
		grouped[m.Date] = append(grouped[m.Date], m)
	}
	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var b strings.Builder
	b.WriteString("My Vedic Food Journal\n")
	b.WriteString("======================\n\n")

	for _, date := range dates {
		day := grouped[date]
		sort.SliceStable(day, func(i, j int) bool { return day[i].Timestamp < day[j].Timestamp })

		b.WriteString(formatJournalDate(date) + "\n")
		b.WriteString("------------------------\n")
		for _, m := range day {
			writeJournalEntry(&b, m)
		}
	}

	b.WriteString("\nEnd of Journal.\n")
	return b.String()
}

func formatJournalDate(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// Absent optional fields are omitted entirely, never rendered as blanks.
func writeJournalEntry(b *strings.Builder, m models.MealRecord) {
	fmt.Fprintf(b, "  - [%s] %s (%.0f kcal)\n", m.LocalTime().Format("3:04 PM"), m.FoodName, m.Calories)
	fmt.Fprintf(b, "    Guna: %s\n", m.Guna)
	if m.MealContext != nil {
		fmt.Fprintf(b, "    Context: %s\n", *m.MealContext)
	}
	fmt.Fprintf(b, "    Macros: P:%.0fg, C:%.0fg, F:%.0fg\n", m.ProteinG, m.CarbsG, m.FatsG)
	if m.VedicTip != "" {
		fmt.Fprintf(b, "    Insight: %q\n", m.VedicTip)
	}
	if m.DoshaSuggestion != nil {
		fmt.Fprintf(b, "    Suggestion: %q\n", *m.DoshaSuggestion)
	}
	b.WriteString("\n")
}

// Time-of-day bands used by the profile, local hours.
// Morning [4,10), Mid-day [10,14), Afternoon [14,18), Evening [18,22),
// Late Night [22,24) ∪ [0,4).
func timeBand(hour int) string {
	switch {
	case hour >= 4 && hour < 10:
		return "Morning"
	case hour >= 10 && hour < 14:
		return "Mid-day"
	case hour >= 14 && hour < 18:
		return "Afternoon"
	case hour >= 18 && hour < 22:
		return "Evening"
	default:
		return "Late Night"
	}
}

// unknownContext is the bucket meals without a context compete in.
const unknownContext = "Unknown"

// GenerateProfile distills the full history into a behavioral profile: the
// dominant guna, eating time band, and meal context, plus guidance sentences
// fired by simple rules over those three. Deterministic for a given input.
func GenerateProfile(meals []models.MealRecord) string {
	gunas := make([]string, 0, len(meals))
	bands := make([]string, 0, len(meals))
	contexts := make([]string, 0, len(meals))
	for _, m := range meals {
		gunas = append(gunas, string(m.Guna))
		bands = append(bands, timeBand(m.LocalTime().Hour()))
		if m.MealContext != nil {
			contexts = append(contexts, string(*m.MealContext))
		} else {
			contexts = append(contexts, unknownContext)
		}
	}

	dominantGuna := modeOf(gunas)
	dominantBand := modeOf(bands)
	dominantContext := modeOf(contexts)

	var b strings.Builder
	b.WriteString("My Food Scripture\n")
	b.WriteString("=================\n\n")
	fmt.Fprintf(&b, "Meals studied: %d\n", len(meals))
	fmt.Fprintf(&b, "Dominant Guna: %s\n", dominantGuna)
	fmt.Fprintf(&b, "Most common eating time: %s\n", dominantBand)
	fmt.Fprintf(&b, "Most common meal context: %s\n\n", dominantContext)

	b.WriteString("Guidance\n")
	b.WriteString("--------\n")
	if dominantGuna == string(models.GunaRajasic) || dominantGuna == string(models.GunaTamasic) {
		b.WriteString("- Favor fresh, lightly spiced, home-cooked foods to invite more Sattva into your meals.\n")
	}
	if strings.Contains(dominantBand, "Late Night") || strings.Contains(dominantBand, "Evening") {
		b.WriteString("- Aim to finish your last meal earlier; a lighter evening supports digestion and rest.\n")
	}
	if dominantContext == string(models.ContextOutside) {
		b.WriteString("- When eating outside, pause for a moment of gratitude before the first bite.\n")
	}
	b.WriteString("- Continue observing your meals with patience; awareness itself is the practice.\n")

	b.WriteString("\nEnd of Scripture.\n")
	return b.String()
}

// modeOf returns the most frequent value. Ties resolve to whichever value
// reached the winning count first in input order, so the result is stable for
// a given slice.
func modeOf(values []string) string {
	counts := map[string]int{}
	var best string
	bestCount := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
