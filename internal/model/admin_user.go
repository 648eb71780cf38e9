package model

import "time"

// AdminUser is a staff account allowed into the admin dashboard.
type AdminUser struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"size:255;not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	SessionToken     string     `json:"-" gorm:"size:64;index"`
	SessionExpiresAt *time.Time `json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SessionValid reports whether token is the current, unexpired session token.
func (a *AdminUser) SessionValid(token string, now time.Time) bool {
	if a.SessionToken == "" || token == "" || a.SessionToken != token {
		return false
	}
	return a.SessionExpiresAt != nil && now.Before(*a.SessionExpiresAt)
}
