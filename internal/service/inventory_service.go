package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mangostorage/inventory-service/internal/domain"
	"github.com/mangostorage/inventory-service/internal/events"
	"github.com/mangostorage/inventory-service/internal/repository"
	apperrors "github.com/mangostorage/inventory-service/pkg/util"
)

// InventoryService coordinates products, serialized stock items and storage
// locations, including read-time quantity reconciliation.
type InventoryService struct {
	products   repository.ProductRepository
	serials    repository.SerialRepository
	storage    repository.StorageRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// InventoryDependencies bundles repositories for the inventory service.
type InventoryDependencies struct {
	ProductRepo repository.ProductRepository
	SerialRepo  repository.SerialRepository
	StorageRepo repository.StorageRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// ProductUpdateInput captures the optional fields of a partial product update.
type ProductUpdateInput struct {
	Name     *string
	Quantity *int64
	Image    *string
}

// SerialUpdateInput captures the optional fields of a partial serial update.
type SerialUpdateInput struct {
	ProductID   *string
	StorageID   *string
	LastUpdated *time.Time
}

// NewInventoryService constructs the service.
func NewInventoryService(deps InventoryDependencies) *InventoryService {
	return &InventoryService{
		products:   deps.ProductRepo,
		serials:    deps.SerialRepo,
		storage:    deps.StorageRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ListProducts serves the product listing with reconciled quantities. Each
// product's quantity is recomputed as the live count of its serial records; a
// stale stored value gets a corrective write. A failed write is logged and
// does not abort reconciliation of the remaining products — the returned
// quantity is the fresh count either way.
func (s *InventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	counts, err := s.products.ListWithSerialCounts(ctx)
	if err != nil {
		return nil, err
	}

	listing := make([]domain.Product, 0, len(counts))
	for _, pc := range counts {
		product := pc.Product
		if pc.LiveCount != product.Quantity {
			if err := s.products.UpdateQuantity(ctx, product.ID, pc.LiveCount); err != nil {
				s.logger.Error("quantity corrective write failed",
					zap.String("product_id", product.ID),
					zap.Int64("stored", product.Quantity),
					zap.Int64("live", pc.LiveCount),
					zap.Error(err))
			} else {
				s.publish(ctx, events.EventQuantityCorrected, product.ID, events.QuantityCorrectedPayload{
					ProductID:   product.ID,
					OldQuantity: product.Quantity,
					NewQuantity: pc.LiveCount,
				})
			}
		}
		product.Quantity = pc.LiveCount
		listing = append(listing, product)
	}
	return listing, nil
}

// CreateProduct stores a new product line.
func (s *InventoryService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if strings.TrimSpace(product.ID) == "" {
		return apperrors.NewValidationError("P_ID is required", nil)
	}
	return s.products.Create(ctx, product)
}

// UpdateProduct applies a partial update to a product.
func (s *InventoryService) UpdateProduct(ctx context.Context, id string, input ProductUpdateInput) error {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Quantity != nil {
		fields["quantity"] = *input.Quantity
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	return s.mapUpdateErr(s.products.UpdateFields(ctx, id, fields))
}

// DeleteProduct removes a product line.
func (s *InventoryService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// CreateSerial stores a new serialized stock item. The owning product's
// cached quantity is left stale on purpose; the next listing reconciles it.
func (s *InventoryService) CreateSerial(ctx context.Context, serial *domain.SerialNumber) error {
	if strings.TrimSpace(serial.SerialNo) == "" {
		return apperrors.NewValidationError("Serial_No is required", nil)
	}
	if serial.LastUpdated.IsZero() {
		serial.LastUpdated = time.Now()
	}
	if err := s.serials.Create(ctx, serial); err != nil {
		return err
	}

	s.publish(ctx, events.EventSerialCreated, serial.SerialNo, events.SerialCreatedPayload{
		SerialNo:  serial.SerialNo,
		ProductID: serial.ProductID,
		StorageID: serial.StorageID,
	})
	return nil
}

// ListSerials returns the joined serial listing.
func (s *InventoryService) ListSerials(ctx context.Context) ([]domain.SerialNumberDetail, error) {
	return s.serials.ListDetails(ctx)
}

// UpdateSerial applies a partial update to a serial record.
func (s *InventoryService) UpdateSerial(ctx context.Context, serialNo string, input SerialUpdateInput) error {
	fields := map[string]any{}
	if input.ProductID != nil {
		fields["product_id"] = *input.ProductID
	}
	if input.StorageID != nil {
		fields["storage_id"] = *input.StorageID
	}
	if input.LastUpdated != nil {
		fields["last_updated"] = *input.LastUpdated
	}
	return s.mapUpdateErr(s.serials.UpdateFields(ctx, serialNo, fields))
}

// DeleteSerial removes a serialized stock item.
func (s *InventoryService) DeleteSerial(ctx context.Context, serialNo string) error {
	if err := s.serials.Delete(ctx, serialNo); err != nil {
		return err
	}
	s.publish(ctx, events.EventSerialDeleted, serialNo, events.SerialDeletedPayload{SerialNo: serialNo})
	return nil
}

// ListStorage returns all storage locations.
func (s *InventoryService) ListStorage(ctx context.Context) ([]domain.StorageLocation, error) {
	return s.storage.List(ctx)
}

func (s *InventoryService) mapUpdateErr(err error) error {
	if errors.Is(err, repository.ErrNoFieldsSupplied) {
		return apperrors.NewValidationError("no updatable fields supplied", nil)
	}
	return err
}

func (s *InventoryService) publish(ctx context.Context, eventType events.EventType, subject string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
