package orderrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations, raised by the partial active-order indexes when a customer
// gains a second active order or a driver claims a second one concurrently.
const pgUniqueViolation = "23505"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items in one insert batch.
// A unique violation on the active-order index maps to a conflict.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errs.NewConflictErrorWithCause("customer already has an active order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing order. Only the fields that can change
// after creation are written; line items are immutable and never updated here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	var driverID any
	if dto.DriverID != nil {
		driverID = *dto.DriverID
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"driver_id": driverID,
			"status":    dto.Status,
			"picked_at": dto.PickedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByCustomer retrieves the customer's current non-delivered order.
func (r *GormOrderRepository) GetActiveByCustomer(ctx context.Context, customerID kernel.UUID) (*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "customer_id = ? AND status <> ?", customerID.Bytes(), order.Delivered).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active order", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasActiveForDriver reports whether the driver holds a non-delivered order.
func (r *GormOrderRepository) HasActiveForDriver(ctx context.Context, driverID kernel.UUID) (bool, error) {
	if err := driverID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("driver_id = ? AND status <> ?", driverID.Bytes(), order.Delivered).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Claim atomically assigns an unclaimed Ready order to a driver.
//
// The WHERE clause is the whole point: driver, status, and pick-up time are
// set only where the order is still Ready and unassigned, so of any number of
// concurrent claimers exactly one matches the row. A loser sees zero affected
// rows and gets a not-found error. A claim that would hand the driver a
// second active order trips the per-driver partial unique index and maps to
// a conflict.
func (r *GormOrderRepository) Claim(
	ctx context.Context,
	orderID kernel.UUID,
	driverID kernel.UUID,
	pickedAt time.Time,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND driver_id IS NULL AND status = ?", orderID.Bytes(), order.Ready).
		Updates(map[string]any{
			"driver_id": driverID.Bytes(),
			"status":    int(order.OnTheWay),
			"picked_at": pickedAt,
		})
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errs.NewConflictErrorWithCause("driver already has an active order", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("claimable order", orderID.String())
	}

	return nil
}

// GetForDriver retrieves an order only if it belongs to the given driver.
func (r *GormOrderRepository) GetForDriver(
	ctx context.Context,
	orderID kernel.UUID,
	driverID kernel.UUID,
) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "id = ? AND driver_id = ?", orderID.Bytes(), driverID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
