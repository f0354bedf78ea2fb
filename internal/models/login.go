package models

import "time"

// LoginEvent is one record per successful sign-in. The log is append-only:
// events are inserted by the login path and never updated or deleted.
type LoginEvent struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	SignInAt time.Time `json:"signInAt"`
}
