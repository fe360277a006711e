package agents

import (
	"math"
	"time"

	"github.com/draftline/draftline/config"
	"github.com/draftline/draftline/internal/models"
)

// PostingTimeAdvisor recommends future posting slots from a fixed hour table,
// split by weekday/weekend.
type PostingTimeAdvisor struct {
	schedule config.PostingSchedule
}

func NewPostingTimeAdvisor(schedule config.PostingSchedule) *PostingTimeAdvisor {
	return &PostingTimeAdvisor{schedule: schedule}
}

// Recommend maps each configured hour to its next occurrence: today if the
// hour is still ahead, otherwise the same hour tomorrow.
func (a *PostingTimeAdvisor) Recommend(now time.Time) models.PostingTimes {
	weekday := now.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday

	hours := a.schedule.WeekdayHours
	tip := a.schedule.WeekdayTip
	if isWeekend {
		hours = a.schedule.WeekendHours
		tip = a.schedule.WeekendTip
	}

	recommendations := make([]models.TimeRecommendation, 0, len(hours))
	for _, hour := range hours {
		slot := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if slot.Before(now) {
			slot = slot.AddDate(0, 0, 1)
		}

		recommendations = append(recommendations, models.TimeRecommendation{
			Time:         slot,
			LocalTime:    slot.Format("Mon Jan 2, 2006 at 3:04 PM"),
			HoursFromNow: int(math.Round(slot.Sub(now).Hours())),
		})
	}

	return models.PostingTimes{
		Recommendations: recommendations,
		Tip:             tip,
	}
}
