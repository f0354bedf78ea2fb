package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/viremo/viremo-be/internal/models"
)

// Weekday labels in fixed Sunday-first order, matching time.Weekday numbering.
var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// The four fixed motivational messages. Exactly one is chosen per week.
const (
	MotivationInactive = "You haven't signed in for a few days. Don't forget to check for updates!"
	MotivationDaily    = "You are active every day. Great consistency!"
	MotivationWeekend  = "You only signed in on weekends. Try to be more active on weekdays!"
	MotivationRegular  = "You sign in regularly. Well done!"
)

// ActivityServiceProvider defines the interface for sign-in activity services.
type ActivityServiceProvider interface {
	RecordLogin(userID string) error
	WeeklyActivity(userID string) (models.WeeklyActivity, error)
}

// ActivityService records sign-in events and aggregates them for the
// dashboard chart.
type ActivityService struct {
	db *sql.DB
}

// NewActivityService creates a new ActivityService.
func NewActivityService(db *sql.DB) *ActivityService {
	return &ActivityService{db: db}
}

// RecordLogin appends one sign-in event for the user. The timestamp is
// assigned by the database.
func (s *ActivityService) RecordLogin(userID string) error {
	stmt, err := s.db.Prepare("INSERT INTO logins (id, user_id) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(uuid.New().String(), userID)
	return err
}

// WeeklyActivity buckets all of the user's sign-in events by UTC weekday into
// exactly 7 Sunday-first slots and derives the motivational message. The
// result depends only on the stored events; days without sign-ins are zero.
func (s *ActivityService) WeeklyActivity(userID string) (models.WeeklyActivity, error) {
	rows, err := s.db.Query("SELECT sign_in_at FROM logins WHERE user_id = ? ORDER BY sign_in_at ASC", userID)
	if err != nil {
		return models.WeeklyActivity{}, err
	}
	defer rows.Close()

	var counts [7]int
	for rows.Next() {
		var signInAt time.Time
		if err := rows.Scan(&signInAt); err != nil {
			return models.WeeklyActivity{}, err
		}
		counts[int(signInAt.UTC().Weekday())]++
	}
	if err := rows.Err(); err != nil {
		return models.WeeklyActivity{}, err
	}

	return models.WeeklyActivity{
		Days:       BucketWeek(counts),
		Motivation: ClassifyWeek(counts),
	}, nil
}

// BucketWeek turns raw per-weekday counts into the fixed-order chart slots.
func BucketWeek(counts [7]int) []models.DayActivity {
	days := make([]models.DayActivity, 7)
	for i, name := range weekdayNames {
		days[i] = models.DayActivity{Day: name, Logins: counts[i]}
	}
	return days
}

// ClassifyWeek maps a week of sign-in counts to one of the four fixed
// motivational messages. First match wins:
//  1. no active days: inactive
//  2. all seven days active: daily
//  3. every active day is Saturday or Sunday: weekend-only
//  4. otherwise: regular
func ClassifyWeek(counts [7]int) string {
	active := 0
	weekendOnly := true
	for day, n := range counts {
		if n > 0 {
			active++
			if day != 0 && day != 6 { // Sunday=0, Saturday=6
				weekendOnly = false
			}
		}
	}

	switch {
	case active == 0:
		return MotivationInactive
	case active == 7:
		return MotivationDaily
	case weekendOnly:
		return MotivationWeekend
	default:
		return MotivationRegular
	}
}
