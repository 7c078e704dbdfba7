package model

import "time"

type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "single"
	MaritalStatusMarried  MaritalStatus = "married"
	MaritalStatusDivorced MaritalStatus = "divorced"
	MaritalStatusWidowed  MaritalStatus = "widowed"
)

func (s MaritalStatus) Valid() bool {
	switch s {
	case MaritalStatusSingle, MaritalStatusMarried, MaritalStatusDivorced, MaritalStatusWidowed:
		return true
	}
	return false
}

// User is a person profile. ID is the external numeric identifier, not the
// storage key.
type User struct {
	ID            int64         `json:"id"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Birthday      *time.Time    `json:"birthday,omitempty"`
	MaritalStatus MaritalStatus `json:"marital_status,omitempty"`
}

type UserDetails struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ID        int64   `json:"id"`
	Total     float64 `json:"total"`
}

type TeamMember struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
