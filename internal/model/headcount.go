package model

import "time"

// HeadCount is the manually maintained number of people inside the venue
// for one business day.
type HeadCount struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	VenueID   uint      `json:"venue_id" gorm:"not null;uniqueIndex:idx_headcount_day,priority:1"`
	Date      string    `json:"date" gorm:"type:char(10);not null;uniqueIndex:idx_headcount_day,priority:2"`
	Count     int       `json:"count" gorm:"column:people_inside;not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}
