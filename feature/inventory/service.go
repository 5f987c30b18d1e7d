package inventory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"inventory-tracker/core/reconcile"
	"inventory-tracker/core/sheet"
	"inventory-tracker/core/storage"
	"inventory-tracker/feature/inventory/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service handles inventory operations.
type Service struct {
	store      Store
	client     storage.Client
	bucket     string
	logger     *zap.Logger
	dateLayout string
	now        func() time.Time
}

// NewService creates a new inventory service. client may be nil, which
// disables upload archiving and export snapshots.
func NewService(store Store, client storage.Client, bucket string, logger *zap.Logger, dateLayout string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:      store,
		client:     client,
		bucket:     bucket,
		logger:     logger,
		dateLayout: dateLayout,
		now:        time.Now,
	}
}

// ItemInput is the body of a create or full edit.
type ItemInput struct {
	ItemName        string          `json:"item_name" example:"Flour"`
	SellingPrice    decimal.Decimal `json:"selling_price" swaggertype:"string" example:"19.99"`
	CurrentQuantity int             `json:"current_quantity" example:"3"`
	UnitType        string          `json:"unit_type" example:"kg"`
	// ExpiryDate is a calendar date; empty means none.
	ExpiryDate string `json:"expiry_date" example:"2025-01-01"`
	Status     string `json:"status" example:"new"`
}

// ItemPatch is the body of a quick edit; nil fields are left unchanged.
type ItemPatch struct {
	ItemName        *string          `json:"item_name,omitempty"`
	SellingPrice    *decimal.Decimal `json:"selling_price,omitempty" swaggertype:"string"`
	CurrentQuantity *int             `json:"current_quantity,omitempty"`
	UnitType        *string          `json:"unit_type,omitempty"`
	// ExpiryDate set to an empty string clears the date.
	ExpiryDate *string `json:"expiry_date,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// List returns one sorted page of items.
func (s *Service) List(ctx context.Context, q ListQuery) (*Page, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := SortItems(items, q.SortKey, q.Direction); err != nil {
		return nil, err
	}
	page := Paginate(items, q.Page, q.PageSize)
	return &page, nil
}

// Get returns a single item.
func (s *Service) Get(ctx context.Context, id uint) (*models.Item, error) {
	return s.store.Get(ctx, id)
}

// Create validates and stores a new item.
func (s *Service) Create(ctx context.Context, in ItemInput) (*models.Item, error) {
	item, err := in.item()
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info("Item created", zap.Uint("id", item.ID), zap.String("item_name", item.ItemName))
	return item, nil
}

// Update replaces every editable field of an item.
func (s *Service) Update(ctx context.Context, id uint, in ItemInput) (*models.Item, error) {
	item, err := in.item()
	if err != nil {
		return nil, err
	}
	return s.store.Update(ctx, id, map[string]any{
		models.ColumnItemName:        item.ItemName,
		models.ColumnSellingPrice:    item.SellingPrice,
		models.ColumnCurrentQuantity: item.CurrentQuantity,
		models.ColumnUnitType:        item.UnitType,
		models.ColumnExpiryDate:      item.ExpiryDate,
		models.ColumnStatus:          item.Status,
	})
}

// QuickEdit updates only the fields present in patch.
func (s *Service) QuickEdit(ctx context.Context, id uint, patch ItemPatch) (*models.Item, error) {
	fields, err := patch.fields()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	return s.store.Update(ctx, id, fields)
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}

// BulkDelete removes every listed item and returns how many were removed.
func (s *Service) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no ids given", ErrInvalidInput)
	}
	n, err := s.store.DeleteMany(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Items deleted", zap.Int("requested", len(ids)), zap.Int64("deleted", n))
	return n, nil
}

// BulkStatus sets the status of every listed item.
func (s *Service) BulkStatus(ctx context.Context, ids []uint, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no ids given", ErrInvalidInput)
	}
	status = models.NormalizeStatus(status)
	if !models.IsValidStatus(status) {
		return 0, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.store.UpdateStatus(ctx, ids, status)
}

// Import reconciles the rows of an uploaded sheet into the inventory.
//
// Rows are committed one by one. When a row fails the import stops and the
// returned report still counts the rows committed before it.
func (s *Service) Import(ctx context.Context, src io.Reader, filename string, opts reconcile.Options) (*reconcile.Report, error) {
	if src == nil {
		return nil, ErrNoFileProvided
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoFileProvided
	}

	rows, err := sheet.Open(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableWorkbook, err)
	}
	defer rows.Close()

	l := s.logger.With(zap.String("file", filename), zap.Bool("dry_run", opts.DryRun))

	if !opts.DryRun {
		s.archive(ctx, l, data, filename)
	}

	hook := opts.OnAction
	opts.OnAction = func(a reconcile.Action) {
		l.Debug("Row reconciled", zap.Int("row", a.Row), zap.String("key", a.Key), zap.String("action", string(a.Type)))
		if hook != nil {
			hook(a)
		}
	}

	report, err := reconcile.Run(ctx, rows, newImportAdapter(s.store), opts)
	if err != nil {
		l.Error("Import aborted",
			zap.Int("processed", report.Processed),
			zap.Int("created", report.Created),
			zap.Int("updated", report.Updated),
			zap.Error(err),
		)
		if errors.Is(err, sheet.ErrUnreadable) {
			return report, fmt.Errorf("%w: %v", ErrUnparsableWorkbook, err)
		}
		return report, err
	}

	l.Info("Import finished",
		zap.Int("processed", report.Processed),
		zap.Int("created", report.Created),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}

// archive keeps a copy of the upload in object storage. Failures are logged only.
func (s *Service) archive(ctx context.Context, l *zap.Logger, data []byte, filename string) {
	if s.client == nil {
		return
	}
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "upload"
	}
	key := fmt.Sprintf("imports/%s/%s-%s", s.now().Format("20060102"), uuid.NewString(), name)
	if err := storage.PutBytes(ctx, s.client, s.bucket, key, data, "application/octet-stream"); err != nil {
		l.Warn("Failed to archive upload", zap.String("key", key), zap.Error(err))
		return
	}
	l.Debug("Upload archived", zap.String("key", key))
}

// Export writes every item as a workbook.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	items, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	return WriteExport(w, items, s.dateLayout)
}

// ExportFilename names an export taken now.
func (s *Service) ExportFilename() string {
	return ExportFilename(s.now())
}

// Snapshot stores an export in object storage and returns its object name.
func (s *Service) Snapshot(ctx context.Context) (string, error) {
	if s.client == nil {
		return "", ErrStorageDisabled
	}
	var buf bytes.Buffer
	if err := s.Export(ctx, &buf); err != nil {
		return "", err
	}
	key := "exports/" + ExportFilename(s.now())
	if err := storage.PutBytes(ctx, s.client, s.bucket, key, buf.Bytes(), ExportContentType); err != nil {
		return "", err
	}
	s.logger.Info("Export snapshot stored", zap.String("key", key), zap.Int("bytes", buf.Len()))
	return key, nil
}

func (in ItemInput) item() (*models.Item, error) {
	name := strings.TrimSpace(in.ItemName)
	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}
	if in.SellingPrice.IsNegative() {
		return nil, fmt.Errorf("%w: selling price must not be negative", ErrInvalidInput)
	}
	if in.CurrentQuantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	expiry, err := parseExpiryInput(in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	status := models.NormalizeStatus(in.Status)
	if status == "" {
		status = models.StatusNotYet
	}
	if !models.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}

	return &models.Item{
		ItemName:        name,
		SellingPrice:    in.SellingPrice.Round(2),
		CurrentQuantity: in.CurrentQuantity,
		UnitType:        strings.TrimSpace(in.UnitType),
		ExpiryDate:      expiry,
		Status:          status,
	}, nil
}

func (p ItemPatch) fields() (map[string]any, error) {
	fields := make(map[string]any)
	if p.ItemName != nil {
		name := strings.TrimSpace(*p.ItemName)
		if name == "" {
			return nil, fmt.Errorf("%w: item name is required", ErrInvalidInput)
		}
		fields[models.ColumnItemName] = name
	}
	if p.SellingPrice != nil {
		if p.SellingPrice.IsNegative() {
			return nil, fmt.Errorf("%w: selling price must not be negative", ErrInvalidInput)
		}
		fields[models.ColumnSellingPrice] = p.SellingPrice.Round(2)
	}
	if p.CurrentQuantity != nil {
		if *p.CurrentQuantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
		}
		fields[models.ColumnCurrentQuantity] = *p.CurrentQuantity
	}
	if p.UnitType != nil {
		fields[models.ColumnUnitType] = strings.TrimSpace(*p.UnitType)
	}
	if p.ExpiryDate != nil {
		expiry, err := parseExpiryInput(*p.ExpiryDate)
		if err != nil {
			return nil, err
		}
		fields[models.ColumnExpiryDate] = expiry
	}
	if p.Status != nil {
		status := models.NormalizeStatus(*p.Status)
		if !models.IsValidStatus(status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *p.Status)
		}
		fields[models.ColumnStatus] = status
	}
	return fields, nil
}

func parseExpiryInput(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, ok := ParseDate(s)
	if !ok {
		return nil, fmt.Errorf("%w: unrecognised date %q", ErrInvalidInput, s)
	}
	return &t, nil
}
