package projection

import (
	"sort"
	"strconv"
	"unicode"

	"fogon/internal/domain/entity"
)

// ParseTables extracts the table numbers from an order's free-text detail
// field. The storefront writes "Mesa 3, 5" style strings, but any integer
// token in the text counts, so extraction tolerates prefixes in either
// language.
func ParseTables(detail string) []int {
	var tables []int
	digits := ""
	flush := func() {
		if digits == "" {
			return
		}
		if n, err := strconv.Atoi(digits); err == nil && n > 0 {
			tables = append(tables, n)
		}
		digits = ""
	}

	for _, r := range detail {
		if unicode.IsDigit(r) {
			digits += string(r)

			continue
		}
		flush()
	}
	flush()

	return tables
}

// BusyTables folds an order snapshot into the set of claimed table numbers:
// every table named by an active dine-in order. Completed, cancelled and
// draft orders release their tables.
func BusyTables(orders []*entity.Order) map[int]bool {
	busy := make(map[int]bool)
	for _, order := range orders {
		if order.Type != entity.FulfillmentTable || !order.IsActive() {
			continue
		}
		for _, table := range ParseTables(order.Detail) {
			busy[table] = true
		}
	}

	return busy
}

// FreeTables lists the unclaimed table numbers in ascending order.
func FreeTables(busy map[int]bool, tableCount int) []int {
	free := make([]int, 0, tableCount)
	for n := 1; n <= tableCount; n++ {
		if !busy[n] {
			free = append(free, n)
		}
	}

	return free
}

// FirstFreeTable suggests the lowest unclaimed table, or 0 when every table
// is taken. The suggestion is a best-effort UI hint: two customers racing
// for the same table between snapshot ticks is accepted as last write wins.
func FirstFreeTable(busy map[int]bool, tableCount int) int {
	for n := 1; n <= tableCount; n++ {
		if !busy[n] {
			return n
		}
	}

	return 0
}

// SortedTables returns the busy set as a sorted slice for stable rendering.
func SortedTables(busy map[int]bool) []int {
	tables := make([]int, 0, len(busy))
	for n := range busy {
		tables = append(tables, n)
	}
	sort.Ints(tables)

	return tables
}
