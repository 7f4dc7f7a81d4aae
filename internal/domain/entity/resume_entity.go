package entity

import "time"

// ResumeDraft is the free-form résumé form a user saved. Independent of profiles.
type ResumeDraft struct {
	ID             int64
	UserID         int64
	Name           string
	Email          string
	Phone          string
	LinkedIn       string
	Education      string
	CGPA           string
	Skills         string
	Projects       string
	Experience     string
	Certifications string
	Summary        string
	CreatedAt      time.Time
}
