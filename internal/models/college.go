package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// College represents a single institution record
type College struct {
	ID       int64      `json:"id" db:"id"`
	Name     string     `json:"name" db:"name"`
	Location string     `json:"location" db:"location"`
	Fees     *int64     `json:"fees" db:"fees"`
	Branches BranchList `json:"branches" db:"branches"`
}

// BranchList represents the ordered branches offered by a college.
// It is persisted as a single comma-delimited TEXT column, so branch
// names must not contain commas to round-trip losslessly.
type BranchList []string

// Joined returns the comma-delimited form used for storage and for
// substring matching in the scorer.
func (b BranchList) Joined() string {
	return strings.Join(b, ",")
}

// Value implements driver.Valuer for BranchList
func (b BranchList) Value() (driver.Value, error) {
	return b.Joined(), nil
}

// Scan implements sql.Scanner for BranchList
func (b *BranchList) Scan(value interface{}) error {
	if value == nil {
		*b = BranchList{}
		return nil
	}

	var text string
	switch v := value.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("cannot scan %T into BranchList", value)
	}

	if text == "" {
		*b = BranchList{}
		return nil
	}

	*b = BranchList(strings.Split(text, ","))
	return nil
}

// FeesKnown reports whether the college has a recorded fee amount
func (c *College) FeesKnown() bool {
	return c.Fees != nil
}
