package model

import (
	"bytes"
	"encoding/json"
)

// Category is the closed set of expense categories. The same list drives
// request validation and report grouping.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryHousing   Category = "housing"
	CategorySport     Category = "sport"
	CategoryEducation Category = "education"
)

var categories = []Category{
	CategoryFood,
	CategoryHealth,
	CategoryHousing,
	CategorySport,
	CategoryEducation,
}

// Categories returns the valid categories in their canonical order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// CostsByCategory groups report items per category. Every category key is
// always present and serialized in canonical order.
type CostsByCategory map[Category][]ReportItem

func NewCostsByCategory() CostsByCategory {
	grouped := make(CostsByCategory, len(categories))
	for _, c := range categories {
		grouped[c] = make([]ReportItem, 0)
	}
	return grouped
}

// Add appends item to its category, keeping insertion order. Items with an
// unknown category are dropped.
func (g CostsByCategory) Add(c Category, item ReportItem) bool {
	if !c.Valid() {
		return false
	}
	g[c] = append(g[c], item)
	return true
}

func (g CostsByCategory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(c))
		if err != nil {
			return nil, err
		}
		items := g[c]
		if items == nil {
			items = []ReportItem{}
		}
		value, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
