package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athena-connect/domain"
)

func sp(s string) *string { return &s }

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, validateOutputFormat(""))
	assert.NoError(t, validateOutputFormat("table"))
	assert.NoError(t, validateOutputFormat("csv"))
	assert.NoError(t, validateOutputFormat("json"))
	assert.Error(t, validateOutputFormat("yaml"))
}

func TestPrintTable_NullCells(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, domain.Table{
		{sp("west"), nil},
		{sp("east"), sp("")},
	})

	assert.Equal(t, "west\tNULL\neast\t\n", buf.String())
}

func TestPrintCSV(t *testing.T) {
	var buf bytes.Buffer
	err := printCSV(&buf, domain.Table{
		{sp("region"), sp("total")},
		{sp("west"), sp("42")},
	})
	require.NoError(t, err)

	assert.Equal(t, "region,total\nwest,42\n", buf.String())
}

func TestPrintJSON_NullCellsStayNull(t *testing.T) {
	var buf bytes.Buffer
	err := printJSON(&buf, domain.Table{{sp("west"), nil}})
	require.NoError(t, err)

	assert.JSONEq(t, `[["west", null]]`, buf.String())
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "query")
	assert.Contains(t, names, "workgroups")
	assert.Contains(t, names, "catalogs")
	assert.Contains(t, names, "saved-queries")
	assert.Contains(t, names, "saved-query")
}
