// Package domain contains the core data types for the recreation programs API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

// Program is a recreational activity offering with its schedule.
// Dates and times are stored as the text the client supplied.
// RepeatType is only meaningful when Repeats is set.
type Program struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date" validate:"required"`
	StartTime   string  `json:"start_time" validate:"required"`
	EndTime     string  `json:"end_time" validate:"required"`
	Repeats     bool    `json:"repeats"`
	RepeatType  *string `json:"repeat_type"`
}
