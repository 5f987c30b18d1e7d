package inventory_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"inventory-tracker/feature/inventory"
	"inventory-tracker/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, store inventory.Store) *fiber.App {
	t.Helper()
	app := fiber.New()
	feature := inventory.NewFeature(store, nil, "inventory", zap.NewNop(), "")
	require.NoError(t, feature.Load(app))
	return app
}

func uploadRequest(t *testing.T, target, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	} else {
		require.NoError(t, mw.WriteField("note", "no file"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandleImport(t *testing.T) {
	store := inventory.NewGormStore(setupTestDB(t))
	seed(t, store, models.Item{ItemName: "Sugar", CurrentQuantity: 50})
	app := setupTestApp(t, store)

	data := workbook(t, importHeader,
		[]any{"Sugar", 2, 12},
		[]any{"Salt", 1, 3},
	)
	resp, err := app.Test(uploadRequest(t, "/inventory/import", "stock.xlsx", data))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Import successful", body["message"])
	assert.EqualValues(t, 2, body["count"])
	assert.EqualValues(t, 1, body["created"])
	assert.EqualValues(t, 1, body["updated"])
}

func TestHandleImport_DryRun(t *testing.T) {
	store := inventory.NewGormStore(setupTestDB(t))
	app := setupTestApp(t, store)

	data := workbook(t, importHeader, []any{"Salt", 1, 3})
	resp, err := app.Test(uploadRequest(t, "/inventory/import?dry_run=true&plan=1", "stock.xlsx", data))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["dry_run"])
	assert.Len(t, body["actions"], 1)

	salt, err := store.FindByName(context.Background(), "Salt")
	require.NoError(t, err)
	assert.Nil(t, salt)
}

func TestHandleImport_BadRequests(t *testing.T) {
	app := setupTestApp(t, inventory.NewGormStore(setupTestDB(t)))

	resp, err := app.Test(uploadRequest(t, "/inventory/import", "", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "no file")

	resp, err = app.Test(uploadRequest(t, "/inventory/import", "stock.xlsx", []byte("garbage")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "unparsable")
}

// downStore reports the database as unreachable on every lookup.
type downStore struct {
	inventory.Store
}

func (downStore) FindByName(ctx context.Context, name string) (*models.Item, error) {
	return nil, fmt.Errorf("find by name: %w", inventory.ErrStoreUnavailable)
}

func TestHandleImport_RowFailure(t *testing.T) {
	store := &failingStore{Store: inventory.NewGormStore(setupTestDB(t)), failOn: "Broken"}
	app := setupTestApp(t, store)

	data := workbook(t, importHeader,
		[]any{"Good", 1, 1},
		[]any{"Broken", 1, 1},
	)
	resp, err := app.Test(uploadRequest(t, "/inventory/import", "stock.xlsx", data))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "Broken")
	assert.EqualValues(t, 1, body["count"])
}

func TestHandleImport_StoreUnavailable(t *testing.T) {
	store := &downStore{Store: inventory.NewGormStore(setupTestDB(t))}
	app := setupTestApp(t, store)

	data := workbook(t, importHeader, []any{"Good", 1, 1})
	resp, err := app.Test(uploadRequest(t, "/inventory/import", "stock.xlsx", data))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.EqualValues(t, 0, decodeBody(t, resp)["count"])
}

func TestHandleCRUD(t *testing.T) {
	app := setupTestApp(t, inventory.NewGormStore(setupTestDB(t)))

	create := httptest.NewRequest(http.MethodPost, "/inventory",
		strings.NewReader(`{"item_name":"Flour","selling_price":"2.5","current_quantity":4,"unit_type":"kg"}`))
	create.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(create)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.Equal(t, "not yet", created["status"])
	id := int(created["id"].(float64))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/inventory/"+strconv.Itoa(id), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	patch := httptest.NewRequest(http.MethodPatch, "/inventory/"+strconv.Itoa(id), strings.NewReader(`{"status":"checked"}`))
	patch.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(patch)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "checked", decodeBody(t, resp)["status"])

	bad := httptest.NewRequest(http.MethodPut, "/inventory/"+strconv.Itoa(id), strings.NewReader(`{"item_name":""}`))
	bad.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(bad)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/inventory?sort=item_name&order=asc&limit=10", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, decodeBody(t, resp)["total"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/inventory?page=4611686018427387905&limit=2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	page := decodeBody(t, resp)
	assert.EqualValues(t, 1, page["total"])
	assert.Empty(t, page["items"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/inventory?order=up", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/inventory/"+strconv.Itoa(id), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/inventory/"+strconv.Itoa(id), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/inventory/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleBulk(t *testing.T) {
	store := inventory.NewGormStore(setupTestDB(t))
	items := seed(t, store, models.Item{ItemName: "A"}, models.Item{ItemName: "B"})
	app := setupTestApp(t, store)

	body, _ := json.Marshal(inventory.BulkRequest{IDs: []uint{items[0].ID, items[1].ID}, Status: "checked"})
	req := httptest.NewRequest(http.MethodPost, "/inventory/bulk/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, decodeBody(t, resp)["updated"])

	body, _ = json.Marshal(inventory.BulkRequest{IDs: []uint{items[0].ID}})
	req = httptest.NewRequest(http.MethodPost, "/inventory/bulk/delete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, decodeBody(t, resp)["deleted"])
}

func TestHandleExport(t *testing.T) {
	store := inventory.NewGormStore(setupTestDB(t))
	seed(t, store, models.Item{ItemName: "Flour", CurrentQuantity: 2})
	app := setupTestApp(t, store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/inventory/export", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, inventory.ExportContentType, resp.Header.Get("Content-Type"))
	assert.Regexp(t, `attachment; filename="Inventory_export_\d{8}\.xlsx"`, resp.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx is a zip archive")
}
