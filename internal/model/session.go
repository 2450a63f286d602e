package model

import "time"

// Session is a server-side login session referenced by the session cookie
type Session struct {
	ID        string    `json:"sid"`
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expire"`
}
