package executor

import "athena-connect/domain"

// Flatten normalizes raw result rows into a table of nullable string cells.
//
// A missing cell value stays nil, so the null/empty-string distinction is
// preserved. Rows with one or zero cells are dropped. That rule skips the
// header artifact the service prepends to result pages, but it also discards
// legitimate single-column rows; it is kept as-is for compatibility with the
// connector's established output.
func Flatten(raw []domain.RawRow) domain.Table {
	table := make(domain.Table, 0, len(raw))
	for _, r := range raw {
		if len(r.Cells) <= 1 {
			continue
		}
		row := make(domain.Row, len(r.Cells))
		copy(row, r.Cells)
		table = append(table, row)
	}
	return table
}
