package presenter

import (
	"fmt"
	"time"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

// BillboardRow is one display row of the billboards dashboard table.
type BillboardRow struct {
	ID        string
	Label     string
	CreatedAt string
}

// BillboardRows maps raw billboards to display rows, preserving input order.
// Pure: same input, same output.
func BillboardRows(items []entity.Billboard) []BillboardRow {
	rows := make([]BillboardRow, 0, len(items))
	for _, b := range items {
		rows = append(rows, BillboardRow{
			ID:        b.ID,
			Label:     b.Label,
			CreatedAt: FormatDate(b.CreatedAt),
		})
	}
	return rows
}

// FormatDate renders a timestamp as "Nov 4th, 2023".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", t.Format("Jan"), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
