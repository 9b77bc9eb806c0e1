package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		day  int
		want string
	}{
		{1, "Nov 1st, 2023"},
		{2, "Nov 2nd, 2023"},
		{3, "Nov 3rd, 2023"},
		{4, "Nov 4th, 2023"},
		{11, "Nov 11th, 2023"},
		{12, "Nov 12th, 2023"},
		{13, "Nov 13th, 2023"},
		{21, "Nov 21st, 2023"},
		{22, "Nov 22nd, 2023"},
		{23, "Nov 23rd, 2023"},
		{30, "Nov 30th, 2023"},
	}
	for _, tc := range cases {
		got := FormatDate(time.Date(2023, time.November, tc.day, 10, 30, 0, 0, time.UTC))
		assert.Equal(t, tc.want, got)
	}
}

func TestBillboardRowsPreserveOrder(t *testing.T) {
	items := []entity.Billboard{
		{ID: "b2", Label: "Winter", CreatedAt: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b1", Label: "Summer", CreatedAt: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)},
	}

	rows := BillboardRows(items)

	require.Len(t, rows, 2)
	assert.Equal(t, BillboardRow{ID: "b2", Label: "Winter", CreatedAt: "Dec 1st, 2023"}, rows[0])
	assert.Equal(t, BillboardRow{ID: "b1", Label: "Summer", CreatedAt: "Jun 15th, 2023"}, rows[1])
}

func TestBillboardRowsPure(t *testing.T) {
	items := []entity.Billboard{
		{ID: "b1", Label: "Summer Sale", CreatedAt: time.Date(2023, time.November, 4, 9, 0, 0, 0, time.UTC)},
	}

	first := BillboardRows(items)
	second := BillboardRows(items)

	assert.Equal(t, first, second)
}

func TestBillboardRowsEmpty(t *testing.T) {
	rows := BillboardRows(nil)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}
