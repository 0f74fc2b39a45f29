package domain

import (
	"fmt"
	"strings"
	"time"
)

type Table struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurant_id"`
	Number       int       `json:"number"`
	Section      string    `json:"section"`
	IsActive     bool      `json:"is_active"`
	Token        string    `json:"-"`
	Link         string    `json:"link"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableLink builds the public ordering URL encoded into a table's QR code.
func TableLink(baseURL string, restaurantID uint, token string) string {
	return fmt.Sprintf("%s/r/%d/t/%s", strings.TrimRight(baseURL, "/"), restaurantID, token)
}

// PlanTables lays out count tables numbered from firstNumber, spreading them
// over the sections round-robin. Tokens are drawn from newToken.
func PlanTables(restaurantID uint, firstNumber, count int, sections []string, newToken func() string) []Table {
	cleaned := make([]string, 0, len(sections))
	for _, s := range sections {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		cleaned = []string{"Main"}
	}

	tables := make([]Table, 0, count)
	for i := 0; i < count; i++ {
		tables = append(tables, Table{
			RestaurantID: restaurantID,
			Number:       firstNumber + i,
			Section:      cleaned[i%len(cleaned)],
			IsActive:     true,
			Token:        newToken(),
		})
	}

	return tables
}

// NextTableNumber returns the number following the highest existing one.
func NextTableNumber(existing []Table) int {
	highest := 0
	for _, t := range existing {
		if t.Number > highest {
			highest = t.Number
		}
	}

	return highest + 1
}
