package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sourishdey2005/Annaprasanna/models"
	"github.com/sourishdey2005/Annaprasanna/utils"
)

// GeminiService is the AI gateway: it classifies meal photos into the Guna
// taxonomy with nutrition estimates, and narrates aggregated statistics. All
// intelligence lives behind this HTTP boundary; nothing here retries.
type GeminiService struct {
	client *http.Client
	apiKey string
	model  string
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		client: &http.Client{Timeout: 30 * time.Second},
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  "gemini-1.5-flash",
	}
}

// Classification is the structured record the classifier returns. Optional
// advisories stay pointers so an omitted field never reads as an empty string.
type Classification struct {
	FoodName string      `json:"food_name"`
	Calories float64     `json:"calories"`
	ProteinG float64     `json:"protein_g"`
	CarbsG   float64     `json:"carbs_g"`
	FatsG    float64     `json:"fats_g"`
	Guna     models.Guna `json:"guna"`
	VedicTip string      `json:"vedic_tip"`

	DoshaSuggestion      *string               `json:"dosha_suggestion,omitempty"`
	TimeOfDayWisdom      *string               `json:"time_of_day_wisdom,omitempty"`
	IngredientBreakdown  *string               `json:"ingredient_breakdown,omitempty"`
	PortionAwareness     *string               `json:"portion_awareness,omitempty"`
	SeasonalAwareness    *string               `json:"seasonal_awareness,omitempty"`
	CookingMethod        *models.CookingMethod `json:"cooking_method,omitempty"`
	CookingMethodInsight *string               `json:"cooking_method_insight,omitempty"`
}

// ClassifyMeal sends the meal photo to the model and parses the structured
// classification. The time-of-day wisdom is computed locally, not by the
// model, so the late-night band stays consistent with the aggregation.
func (g *GeminiService) ClassifyMeal(ctx context.Context, imageDataURI string, dosha models.Dosha, timestampMs int64) (*Classification, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY not set", utils.ErrClassification)
	}

	mimeType, data, err := splitDataURI(imageDataURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}

	prompt := buildClassifyPrompt(dosha, seasonOf(timestampMs))
	body := map[string]any{
		"contents": []map[string]any{{
			"parts": []map[string]any{
				{"text": prompt},
				{"inline_data": map[string]string{"mime_type": mimeType, "data": data}},
			},
		}},
		"generationConfig": map[string]any{
			"temperature":        0.2,
			"response_mime_type": "application/json",
		},
	}

	raw, err := g.generate(ctx, body)
	if err != nil {
		return nil, err
	}

	var cls Classification
	if err := json.Unmarshal([]byte(raw), &cls); err != nil {
		preview := raw
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, fmt.Errorf("%w: decode model response: %v | body: %s", utils.ErrClassification, err, preview)
	}
	if cls.FoodName == "" || !cls.Guna.Valid() {
		return nil, fmt.Errorf("%w: model returned incomplete classification", utils.ErrClassification)
	}
	if cls.Calories < 0 || cls.ProteinG < 0 || cls.CarbsG < 0 || cls.FatsG < 0 {
		return nil, fmt.Errorf("%w: model returned negative nutrition values", utils.ErrClassification)
	}
	if cls.CookingMethod != nil && !cls.CookingMethod.Valid() {
		cls.CookingMethod = nil
	}

	cls.TimeOfDayWisdom = timeOfDayWisdom(timestampMs)

	return &cls, nil
}

// NarrateWeekly turns one week's aggregated data into a 1-2 sentence summary.
func (g *GeminiService) NarrateWeekly(ctx context.Context, data models.WeeklyReportData) (string, error) {
	var sb strings.Builder
	sb.WriteString("You are a wise and compassionate Vedic nutritional guide.\n")
	sb.WriteString("Analyze the following weekly meal data and provide a short, encouraging, 1-2 sentence narrative summary.\n")
	sb.WriteString("Focus on the most significant pattern. If protein is increasing, mention it positively. If late-night eating is a habit, gently point it out.\n")
	sb.WriteString("Do not use markdown or JSON. Respond with only the narrative text.\n\nData:\n")
	fmt.Fprintf(&sb, "- Total Meals: %d\n", data.TotalMeals)
	fmt.Fprintf(&sb, "- Sattvic Meals: %d\n", data.SattvicCount)
	fmt.Fprintf(&sb, "- Rajasic Meals: %d\n", data.RajasicCount)
	fmt.Fprintf(&sb, "- Tamasic Meals: %d\n", data.TamasicCount)
	fmt.Fprintf(&sb, "- Late-Night Meals: %d\n", data.LateNightMeals)
	fmt.Fprintf(&sb, "- Outside Meals: %d\n", data.OutsideMeals)
	fmt.Fprintf(&sb, "- Protein Trend: %s\n", data.ProteinIntakeTrend)

	return g.generateText(ctx, sb.String())
}

// NarrateDaily turns one day's totals into a short "mindful score" narrative.
func (g *GeminiService) NarrateDaily(ctx context.Context, totals models.DailyTotals) (string, error) {
	var sb strings.Builder
	sb.WriteString("You are a wise and compassionate Vedic nutritional guide.\n")
	sb.WriteString("Analyze the following daily meal data and provide a short, encouraging, 1-2 sentence narrative summary that acts as a 'mindful score'.\n")
	sb.WriteString("Do not use markdown or JSON. Respond with only the narrative text.\n\nData:\n")
	fmt.Fprintf(&sb, "- Total Meals: %d\n", totals.MealCount)
	fmt.Fprintf(&sb, "- Sattvic Meals: %d\n", totals.Sattvic)
	fmt.Fprintf(&sb, "- Rajasic Meals: %d\n", totals.Rajasic)
	fmt.Fprintf(&sb, "- Tamasic Meals: %d\n", totals.Tamasic)
	fmt.Fprintf(&sb, "- Late-Night Meals: %d\n", totals.LateNightMealCount)
	fmt.Fprintf(&sb, "- Total Calories: %.0f\n", totals.Calories)

	return g.generateText(ctx, sb.String())
}

func (g *GeminiService) generateText(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY not set", utils.ErrClassification)
	}
	body := map[string]any{
		"contents": []map[string]any{{
			"parts": []map[string]any{{"text": prompt}},
		}},
		"generationConfig": map[string]any{"temperature": 0.4},
	}
	text, err := g.generate(ctx, body)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty narrative from model", utils.ErrClassification)
	}
	return text, nil
}

// generate performs one generateContent call and returns the first candidate's
// text. Non-200 responses surface the exact error body.
func (g *GeminiService) generate(ctx context.Context, body map[string]any) (string, error) {
	b, _ := json.Marshal(body)

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model, g.apiKey,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrClassification, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request error: %v", utils.ErrClassification, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", utils.ErrClassification, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%w: api error (%d): %s", utils.ErrClassification, resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w: api error (%d): %s", utils.ErrClassification, resp.StatusCode, string(respBytes))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", utils.ErrClassification, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", utils.ErrClassification)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func buildClassifyPrompt(dosha models.Dosha, season string) string {
	var sb strings.Builder
	sb.WriteString("Act as a Vedic Nutritionist and certified dietician.\n")
	sb.WriteString("Analyze the food in this image and respond ONLY in valid JSON.\n\n")
	fmt.Fprintf(&sb, "The user's dosha is %s and the current season is %s.\n\n", dosha, season)
	sb.WriteString("Return:\n")
	sb.WriteString("- food_name: string\n")
	sb.WriteString("- calories: number (kcal)\n")
	sb.WriteString("- protein_g: number\n")
	sb.WriteString("- carbs_g: number\n")
	sb.WriteString("- fats_g: number\n")
	sb.WriteString("- guna: 'Sattvic' | 'Rajasic' | 'Tamasic'\n")
	sb.WriteString("- vedic_tip: short spiritual or dietary insight based on the guna\n")
	sb.WriteString("- dosha_suggestion: optional, gentle suggestion for the user's dosha.\n")
	sb.WriteString("- ingredient_breakdown: optional, short analysis of major ingredients and which contributes most to calories.\n")
	sb.WriteString("- portion_awareness: optional, warning if the portion seems larger than a traditional serving, framed constructively.\n")
	sb.WriteString("- seasonal_awareness: optional, gentle warning if the food conflicts with the current season's qualities.\n")
	sb.WriteString("- cooking_method: 'Fried' | 'Steamed' | 'Roasted' | 'Raw' | 'Other'\n")
	sb.WriteString("- cooking_method_insight: optional, explanation of how the cooking method influences the food's Guna.\n\n")
	sb.WriteString("Be realistic with Indian food portions.\nNo markdown. No extra commentary.\n")
	return sb.String()
}

func splitDataURI(uri string) (mimeType, data string, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", "", fmt.Errorf("invalid data URI")
	}
	parts := strings.SplitN(uri, ",", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid data URI")
	}
	meta := strings.TrimPrefix(parts[0], "data:") // "image/jpeg;base64"
	mimeType = strings.SplitN(meta, ";", 2)[0]
	if mimeType == "" {
		return "", "", fmt.Errorf("missing media type in data URI")
	}
	return mimeType, parts[1], nil
}

func seasonOf(timestampMs int64) string {
	month := int(time.UnixMilli(timestampMs).Month())
	switch {
	case month >= 3 && month <= 5:
		return "Spring"
	case month >= 6 && month <= 8:
		return "Summer"
	case month >= 9 && month <= 11:
		return "Autumn"
	default:
		return "Winter"
	}
}

// timeOfDayWisdom mirrors the late-night band used by aggregation and the
// Pitta midday window. Nil outside both windows.
func timeOfDayWisdom(timestampMs int64) *string {
	hour := time.UnixMilli(timestampMs).Hour()
	if hour >= lateNightStartHour || hour < lateNightEndHour {
		w := "Eating heavy foods late at night can increase Tamasic energy and disrupt sleep cycles, making it harder for the body to rest and repair."
		return &w
	}
	if hour >= 10 && hour <= 14 {
		w := "This is the time of Pitta dominance when digestive fire (Agni) is strongest. It is the best time to eat your largest meal of the day."
		return &w
	}
	return nil
}
