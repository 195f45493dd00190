package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athena-connect/domain"
)

func TestFlatten_DropsNarrowRows(t *testing.T) {
	raw := []domain.RawRow{
		{Cells: []*string{}},
		{Cells: []*string{sp("a")}},
		{Cells: []*string{sp("a"), sp("b")}},
		{Cells: []*string{sp("a"), sp("b"), sp("c")}},
	}

	table := Flatten(raw)

	assert.Equal(t, domain.Table{
		{sp("a"), sp("b")},
		{sp("a"), sp("b"), sp("c")},
	}, table)
}

func TestFlatten_OrderPreserved(t *testing.T) {
	raw := []domain.RawRow{
		{Cells: []*string{sp("1"), sp("2")}},
		{Cells: []*string{sp("3"), sp("4")}},
		{Cells: []*string{sp("5"), sp("6")}},
	}

	table := Flatten(raw)

	require.Len(t, table, 3)
	assert.Equal(t, "1", *table[0][0])
	assert.Equal(t, "3", *table[1][0])
	assert.Equal(t, "5", *table[2][0])
}

func TestFlatten_NullDistinctFromEmpty(t *testing.T) {
	raw := []domain.RawRow{
		{Cells: []*string{nil, sp("")}},
	}

	table := Flatten(raw)

	require.Len(t, table, 1)
	require.Len(t, table[0], 2)
	assert.Nil(t, table[0][0], "missing value stays null")
	require.NotNil(t, table[0][1])
	assert.Equal(t, "", *table[0][1], "empty string stays empty, not null")
}

func TestFlatten_NilCellsRow(t *testing.T) {
	table := Flatten([]domain.RawRow{{Cells: nil}})
	assert.Empty(t, table)
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten([]domain.RawRow{}))
}
