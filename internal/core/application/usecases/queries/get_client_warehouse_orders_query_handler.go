package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetClientWarehouseOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetClientWarehouseOrdersQueryHandler(db *gorm.DB) GetClientWarehouseOrdersQueryHandler {
	return GetClientWarehouseOrdersQueryHandler{db: db}
}

func (h GetClientWarehouseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClientWarehouseOrdersQuery,
) ([]WarehouseOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	excluded := -1
	if !query.includeReleased {
		excluded = int(warehouse.Released)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.tracking_number,
			o.status,
			o.location,
			o.source_delivery_id,
			COUNT(p.id),
			COALESCE(SUM(p.volume_cbm), 0),
			COALESCE(SUM(p.weight_kg), 0),
			o.packed_at,
			o.created_at
		FROM warehouse_orders o
		LEFT JOIN packages p ON p.warehouse_order_id = o.id
		WHERE o.client_id = ? AND o.status <> ?
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id
	`, query.clientID.Bytes(), excluded).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]WarehouseOrderView, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			status     int
			location   sql.NullString
			deliveryID *uuid.UUID
			packedAt   *time.Time
			v          WarehouseOrderView
		)
		err = rows.Scan(
			&id, &v.TrackingNumber, &status, &location, &deliveryID,
			&v.PackageCount, &v.VolumeCbm, &v.WeightKg, &packedAt, &v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if v.SourceDeliveryID, err = optionalID(deliveryID); err != nil {
			return nil, err
		}
		v.Status = warehouse.Status(status).String()
		v.Location = location.String
		v.PackedAt = packedAt
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
