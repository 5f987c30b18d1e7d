package reconcile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inventory-tracker/core/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stockRow struct {
	Name string
	Qty  string
}

type stockRecord struct {
	Name string
	Qty  string
}

// memoryAdapter is a simple test adapter over an in-memory map.
type memoryAdapter struct {
	records   map[string]*stockRecord
	findErr   map[string]error
	createErr map[string]error
	creates   int
	merges    int
}

func newMemoryAdapter(existing ...string) *memoryAdapter {
	m := &memoryAdapter{
		records:   make(map[string]*stockRecord),
		findErr:   make(map[string]error),
		createErr: make(map[string]error),
	}
	for _, name := range existing {
		m.records[name] = &stockRecord{Name: name, Qty: "50"}
	}
	return m
}

func (m *memoryAdapter) Name() string { return "memory" }

func (m *memoryAdapter) Decode(row sheet.Row) (stockRow, bool) {
	col, ok := row.Header().Resolve("name")
	if !ok {
		return stockRow{}, false
	}
	name, ok := row.Lookup(col)
	if !ok {
		return stockRow{}, false
	}
	out := stockRow{Name: name.Text()}
	if col, ok := row.Header().Resolve("qty"); ok {
		qty, _ := row.Lookup(col)
		out.Qty = qty.Text()
	}
	return out, true
}

func (m *memoryAdapter) Key(c stockRow) string { return c.Name }

func (m *memoryAdapter) Find(ctx context.Context, key string) (*stockRecord, error) {
	if err := m.findErr[key]; err != nil {
		return nil, err
	}
	return m.records[key], nil
}

func (m *memoryAdapter) Create(ctx context.Context, c stockRow) error {
	if err := m.createErr[c.Name]; err != nil {
		return err
	}
	m.creates++
	m.records[c.Name] = &stockRecord{Name: c.Name, Qty: c.Qty}
	return nil
}

func (m *memoryAdapter) Merge(ctx context.Context, existing *stockRecord, c stockRow) error {
	m.merges++
	existing.Qty = c.Qty
	return nil
}

func csvRows(s string) RowSource {
	return sheet.OpenCSV(strings.NewReader(s))
}

func TestRun_CreateAndUpdate(t *testing.T) {
	adapter := newMemoryAdapter("Flour")

	report, err := Run(context.Background(), csvRows("Name,Qty\nFlour,12\nSugar,3\n"), adapter, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, "memory", report.Adapter)
	assert.Empty(t, report.Actions, "actions are only kept when planning")

	assert.Equal(t, "12", adapter.records["Flour"].Qty)
	assert.Equal(t, "3", adapter.records["Sugar"].Qty)
}

func TestRun_SkipsRowsWithoutKey(t *testing.T) {
	adapter := newMemoryAdapter()

	report, err := Run(context.Background(), csvRows("Name,Qty\n,5\nSalt,1\n"), adapter, Options{Plan: true})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, adapter.creates)
	assert.Equal(t, []Action{
		{Type: ActionSkip, Row: 2},
		{Type: ActionCreate, Row: 3, Key: "Salt"},
	}, report.Actions)
}

func TestRun_NoKeyColumn(t *testing.T) {
	adapter := newMemoryAdapter()

	report, err := Run(context.Background(), csvRows("Product,Qty\nSalt,1\n"), adapter, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, adapter.records)
}

func TestRun_RepeatedKeyUpdatesRowCreatedEarlier(t *testing.T) {
	adapter := newMemoryAdapter()

	report, err := Run(context.Background(), csvRows("Name,Qty\nRice,1\nRice,2\n"), adapter, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, "2", adapter.records["Rice"].Qty)
}

func TestRun_DryRun(t *testing.T) {
	adapter := newMemoryAdapter("Flour")

	report, err := Run(context.Background(), csvRows("Name,Qty\nFlour,1\nRice,1\nRice,2\n"), adapter, Options{DryRun: true, Plan: true})
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 2, report.Updated)
	assert.Equal(t, ActionUpdate, report.Actions[2].Type, "repeated key is planned as an update")

	assert.Zero(t, adapter.creates)
	assert.Zero(t, adapter.merges)
	assert.Equal(t, "50", adapter.records["Flour"].Qty)
}

func TestRun_RowFailureKeepsCommittedRows(t *testing.T) {
	adapter := newMemoryAdapter()
	adapter.createErr["Bad"] = errors.New("constraint violated")

	report, err := Run(context.Background(), csvRows("Name,Qty\nGood,1\nBad,2\nLater,3\n"), adapter, Options{})
	require.Error(t, err)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 3, rowErr.Row)
	assert.Equal(t, "Bad", rowErr.Key)
	assert.ErrorContains(t, err, "constraint violated")

	assert.Equal(t, 1, report.Processed)
	assert.Contains(t, adapter.records, "Good")
	assert.NotContains(t, adapter.records, "Later")
}

func TestRun_LookupFailure(t *testing.T) {
	sentinel := errors.New("store down")
	adapter := newMemoryAdapter()
	adapter.findErr["Flour"] = sentinel

	report, err := Run(context.Background(), csvRows("Name\nFlour\n"), adapter, Options{})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, report.Processed)
}

func TestRun_OnAction(t *testing.T) {
	var seen []ActionType
	opts := Options{OnAction: func(a Action) { seen = append(seen, a.Type) }}

	_, err := Run(context.Background(), csvRows("Name\nA\n\"\"\nA\n"), newMemoryAdapter(), opts)
	require.NoError(t, err)
	assert.Equal(t, []ActionType{ActionCreate, ActionUpdate}, seen)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, csvRows("Name\nA\n"), newMemoryAdapter(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, report.Processed)
}

type failingSource struct{ err error }

func (f *failingSource) Next() bool     { return false }
func (f *failingSource) Row() sheet.Row { return sheet.Row{} }
func (f *failingSource) Err() error     { return f.err }

func TestRun_SourceError(t *testing.T) {
	report, err := Run(context.Background(), &failingSource{err: sheet.ErrUnreadable}, newMemoryAdapter(), Options{})
	assert.ErrorIs(t, err, sheet.ErrUnreadable)
	assert.NotNil(t, report)
}
