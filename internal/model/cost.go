package model

import "time"

type Cost struct {
	ID          string    `json:"_id"`
	UserID      int64     `json:"userid"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Sum         float64   `json:"sum"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CostInput carries an unvalidated add-cost request. Zero values mean the
// field was not supplied.
type CostInput struct {
	UserID      float64
	Description string
	Category    string
	Sum         float64
	CreatedAt   string
}

type ReportItem struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

type MonthlyReport struct {
	UserID int64           `json:"userid"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Costs  CostsByCategory `json:"costs"`
}
