package sheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, it Iterator) []Row {
	t.Helper()
	var rows []Row
	for it.Next() {
		rows = append(rows, it.Row())
	}
	require.NoError(t, it.Err())
	require.NoError(t, it.Close())
	return rows
}

func TestWorkbook_RoundTrip(t *testing.T) {
	w, err := NewWriter("Inventory")
	require.NoError(t, err)
	require.NoError(t, w.WriteRow("Item Name", "Price", "Expiry"))
	require.NoError(t, w.WriteRow("Flour", 19.99, 45000))
	require.NoError(t, w.WriteRow()) // blank row
	require.NoError(t, w.WriteRow("Sugar", "3", "2025-01-01"))

	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	it, err := OpenWorkbook(&buf)
	require.NoError(t, err)
	rows := collect(t, it)

	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Number)

	col, ok := rows[0].Header().Resolve("price")
	require.True(t, ok)
	price, _ := rows[0].Lookup(col)
	assert.Equal(t, "19.99", price.Text())

	col, _ = rows[0].Header().Resolve("expiry")
	serial, _ := rows[0].Lookup(col)
	n, ok := serial.Number()
	assert.True(t, ok)
	assert.Equal(t, 45000.0, n)

	assert.Equal(t, Cell("Sugar"), rows[1].Values()["Item Name"])
}

func TestOpenWorkbook_Garbage(t *testing.T) {
	_, err := OpenWorkbook(strings.NewReader("definitely not a zip archive"))
	assert.True(t, errors.Is(err, ErrUnreadable))
}

func TestOpenCSV(t *testing.T) {
	input := "\ufeffItem Name,Quantity\n\n,\nFlour,3\nSugar\n"

	rows := collect(t, OpenCSV(strings.NewReader(input)))
	require.Len(t, rows, 2)

	col, ok := rows[0].Header().Resolve("item name")
	require.True(t, ok, "byte order mark is stripped from the header")
	name, _ := rows[0].Lookup(col)
	assert.Equal(t, "Flour", name.Text())

	_, present := rows[1].Lookup(1)
	assert.False(t, present)
}

func TestOpen_ByExtension(t *testing.T) {
	it, err := Open(strings.NewReader("Item Name\nFlour\n"), "stock.CSV")
	require.NoError(t, err)
	assert.Len(t, collect(t, it), 1)

	_, err = Open(strings.NewReader("Item Name\nFlour\n"), "stock.xlsx")
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestHeaderOnly(t *testing.T) {
	rows := collect(t, OpenCSV(strings.NewReader("Item Name,Price\n")))
	assert.Empty(t, rows)
}
