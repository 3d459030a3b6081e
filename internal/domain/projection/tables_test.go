package projection

import (
	"testing"

	"fogon/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestParseTables(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   []int
	}{
		{"spanish prefix", "Mesa 3, 5", []int{3, 5}},
		{"english prefix", "Table 7", []int{7}},
		{"bare numbers", "2 4 12", []int{2, 4, 12}},
		{"no numbers", "para llevar", nil},
		{"zero is not a table", "Mesa 0", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTables(tt.detail))
		})
	}
}

func TestBusyTables(t *testing.T) {
	orders := []*entity.Order{
		{Type: entity.FulfillmentTable, Status: entity.StatusPending, Detail: "Mesa 3, 5"},
		{Type: entity.FulfillmentTable, Status: entity.StatusCompleted, Detail: "Mesa 1"},
		{Type: entity.FulfillmentTable, Status: entity.StatusPendingPayment, Detail: "Mesa 2"},
		{Type: entity.FulfillmentDelivery, Status: entity.StatusPending, Detail: "Calle 4"},
	}

	busy := BusyTables(orders)

	// Only the active dine-in order claims tables: completed and draft
	// orders release theirs, and the delivery address number is ignored.
	assert.Equal(t, map[int]bool{3: true, 5: true}, busy)
}

func TestFirstFreeTable(t *testing.T) {
	busy := map[int]bool{1: true, 2: true}

	assert.Equal(t, 3, FirstFreeTable(busy, 10))
	assert.Equal(t, 0, FirstFreeTable(map[int]bool{1: true, 2: true}, 2), "full house suggests nothing")
	assert.Equal(t, 1, FirstFreeTable(map[int]bool{}, 5))
}

func TestFreeTables(t *testing.T) {
	busy := map[int]bool{2: true, 4: true}

	assert.Equal(t, []int{1, 3, 5}, FreeTables(busy, 5))
}

func TestSortedTables(t *testing.T) {
	assert.Equal(t, []int{2, 3, 9}, SortedTables(map[int]bool{9: true, 2: true, 3: true}))
	assert.Empty(t, SortedTables(nil))
}
