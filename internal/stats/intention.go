package stats

import (
	"time"

	"github.com/lifelog/internal/record"
)

// IntentionFor 返回 now 所在月份的月度意图
func IntentionFor(intentions []record.MonthlyIntention, now time.Time) (record.MonthlyIntention, bool) {
	month := record.FormatMonth(now)
	for _, intention := range intentions {
		if intention.Month == month {
			return intention, true
		}
	}
	return record.MonthlyIntention{}, false
}
