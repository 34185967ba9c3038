package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sourishdey2005/Annaprasanna/utils"
)

// DigestService emails a plain-text summary of the previous complete calendar
// week every Monday morning. Skipped entirely when no digest email is set.
type DigestService struct {
	log      *zap.Logger
	meals    *MealService
	settings *SettingsService
	gemini   *GeminiService
}

func NewDigestService(log *zap.Logger, meals *MealService, settings *SettingsService, gemini *GeminiService) *DigestService {
	return &DigestService{log: log, meals: meals, settings: settings, gemini: gemini}
}

// Start registers the weekly job on the scheduler.
func (d *DigestService) Start(c *cron.Cron) error {
	_, err := c.AddFunc("0 7 * * MON", d.SendWeeklyDigest)
	return err
}

// SendWeeklyDigest covers the previous Monday-Sunday week, mirroring the
// weekly report's windowing.
func (d *DigestService) SendWeeklyDigest() {
	settings, err := d.settings.Get()
	if err != nil {
		d.log.Error("digest: load settings", zap.Error(err))
		return
	}
	if settings.DigestEmail == "" {
		d.log.Info("digest: no email configured, skipping")
		return
	}

	now := time.Now()
	from := StartOfWeek(now).AddDate(0, 0, -7)
	to := from.AddDate(0, 0, 7)

	meals, err := d.meals.ListByRange(from.UnixMilli(), to.UnixMilli())
	if err != nil {
		d.log.Error("digest: fetch week", zap.Error(err))
		return
	}
	if len(meals) == 0 {
		d.log.Info("digest: no meals last week, skipping")
		return
	}

	data := ComputeWeeklyReportData(meals)

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()
	narrative, err := d.gemini.NarrateWeekly(ctx, data)
	if err != nil {
		// the digest still goes out without the narrative
		d.log.Warn("digest: narrative unavailable", zap.Error(err))
		narrative = ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your week of %s\n\n", from.Format("January 2, 2006"))
	if narrative != "" {
		fmt.Fprintf(&b, "%s\n\n", narrative)
	}
	fmt.Fprintf(&b, "Meals logged: %d\n", data.TotalMeals)
	fmt.Fprintf(&b, "Guna balance: %d Sattvic, %d Rajasic, %d Tamasic\n",
		data.SattvicCount, data.RajasicCount, data.TamasicCount)
	fmt.Fprintf(&b, "Late-night meals: %d\n", data.LateNightMeals)
	fmt.Fprintf(&b, "Protein trend: %s\n\n", data.ProteinIntakeTrend)
	b.WriteString(GenerateJournal(meals))

	subject := "Annaprasanna: your weekly Ahara report"
	if err := utils.SendDigestEmail(settings.DigestEmail, subject, b.String()); err != nil {
		d.log.Error("digest: send email", zap.Error(err))
		return
	}
	d.log.Info("digest: sent", zap.String("to", settings.DigestEmail), zap.Int("meals", data.TotalMeals))
}
