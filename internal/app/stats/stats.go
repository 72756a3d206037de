package stats

import (
	"fmt"

	"github.com/habtamu/memberdesk/internal/app/models"
)

// Participation weights per activity level. Unset or unknown levels
// contribute nothing.
var activityWeights = map[models.ActivityLevel]float64{
	models.ActivityNotActive:  0,
	models.ActivityLessActive: 0.5,
	models.ActivityActive:     0.75,
	models.ActivityVeryActive: 1.0,
}

// Summary holds the dashboard's derived roster metrics.
type Summary struct {
	TotalUsers        int
	ActiveUsers       int
	ParticipationRate string // percentage with two decimals
	ActiveShare       string // active users as a percentage of total
}

// Summarize derives the dashboard metrics from the in-memory roster.
// The participation rate is the weighted activity sum over the total
// count, as a percentage; an empty roster yields "0.00" rather than a
// division by zero.
func Summarize(users []models.User) Summary {
	total := len(users)

	active := 0
	weighted := 0.0
	for i := range users {
		level := activityLevel(&users[i])
		weighted += activityWeights[level]
		if level == models.ActivityActive || level == models.ActivityVeryActive {
			active++
		}
	}

	s := Summary{
		TotalUsers:        total,
		ActiveUsers:       active,
		ParticipationRate: "0.00",
		ActiveShare:       "0.00",
	}
	if total > 0 {
		s.ParticipationRate = formatPercent(weighted / float64(total))
		s.ActiveShare = formatPercent(float64(active) / float64(total))
	}
	return s
}

func activityLevel(u *models.User) models.ActivityLevel {
	if u.University == nil {
		return models.ActivityNotActive
	}
	return u.University.ActivityLevel
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.2f", ratio*100)
}
