package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/viremo/viremo-be/internal/models"
)

type stubActivityService struct {
	activity models.WeeklyActivity
	err      error
}

func (s *stubActivityService) RecordLogin(userID string) error { return nil }

func (s *stubActivityService) WeeklyActivity(userID string) (models.WeeklyActivity, error) {
	return s.activity, s.err
}

func TestActivityHandler_GetWeekly(t *testing.T) {
	svc := &stubActivityService{activity: models.WeeklyActivity{
		Days: []models.DayActivity{
			{Day: "Sunday", Logins: 0}, {Day: "Monday", Logins: 2},
			{Day: "Tuesday", Logins: 0}, {Day: "Wednesday", Logins: 0},
			{Day: "Thursday", Logins: 0}, {Day: "Friday", Logins: 0},
			{Day: "Saturday", Logins: 0},
		},
		Motivation: "You sign in regularly. Well done!",
	}}
	h := NewActivityHandler(svc)

	rec := httptest.NewRecorder()
	h.GetWeekly(rec, authedRequest("GET", "/api/v1/activity", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var got models.WeeklyActivity
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(got.Days) != 7 {
		t.Errorf("expected 7 day slots, got %d", len(got.Days))
	}
	if got.Days[0].Day != "Sunday" {
		t.Errorf("first slot = %q; want Sunday", got.Days[0].Day)
	}
	if got.Motivation == "" {
		t.Error("motivation missing from payload")
	}
}

func TestActivityHandler_ServiceError(t *testing.T) {
	h := NewActivityHandler(&stubActivityService{err: errors.New("db down")})

	rec := httptest.NewRecorder()
	h.GetWeekly(rec, authedRequest("GET", "/api/v1/activity", ""))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
}

func TestActivityHandler_NoClaims(t *testing.T) {
	h := NewActivityHandler(&stubActivityService{})

	rec := httptest.NewRecorder()
	h.GetWeekly(rec, httptest.NewRequest("GET", "/api/v1/activity", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500 without claims", rec.Code)
	}
}
