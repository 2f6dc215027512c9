package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores the shipment and its member links. A member that already sits
// in another active shipment violates the partial unique index.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(&dto).Error; err != nil {
			return err
		}
		// Inserted directly: association saves use ON CONFLICT DO NOTHING,
		// which would hide a taken member.
		return tx.Create(&dto.Items).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == ActiveItemIndex {
			return errs.NewValueIsInvalidErrorWithCause("warehouseOrderIds",
				fmt.Errorf("a warehouse order already belongs to an active shipment: %w", err))
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the shipment columns and the activity of its links. The
// member set itself never changes after creation.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ShipmentDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "client_id", "created_at", "Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	err := db.Model(&ItemDTO{}).Where("shipment_id = ?", dto.ID).
		Update("active", aggregate.IsActive()).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormShipmentRepository) FindActiveByWarehouseOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*shipment.Shipment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN shipment_items si ON si.shipment_id = shipments.id AND si.active").
		Where("si.warehouse_order_id = ?", orderID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouseOrderId", orderID.String())
		}
		return nil, err
	}

	return r.withItems(ctx, dto)
}

func (r *GormShipmentRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentId", id.String())
		}
		return nil, err
	}

	return r.withItems(ctx, dto)
}

// withItems loads the links with a plain query so a row lock taken on the
// shipment does not extend to them.
func (r *GormShipmentRepository) withItems(ctx context.Context, dto ShipmentDTO) (*shipment.Shipment, error) {
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", dto.ID).
		Order("position").
		Find(&dto.Items).Error
	if err != nil {
		return nil, err
	}
	return toDomain(dto)
}
