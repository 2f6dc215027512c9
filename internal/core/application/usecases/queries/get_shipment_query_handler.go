package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetShipmentQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var row struct {
		ID                     uuid.UUID
		ClientID               uuid.UUID
		Status                 int
		DominantType           int
		PriceEur               *decimal.Decimal
		PricingRuleID          *uuid.UUID
		NeedsManualQuote       bool
		Choice                 int
		PaymentMethod          int
		InvoiceID              *uuid.UUID
		OwnVehicleRegistration string
		OwnTrailerRegistration string
		OwnCarrier             string
		OwnTrackingNumber      string
		OwnPlannedLoadingDate  *time.Time
		CreatedAt              time.Time
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id, client_id, status, dominant_type, price_eur, pricing_rule_id,
			needs_manual_quote, choice, payment_method, invoice_id,
			own_vehicle_registration, own_trailer_registration, own_carrier,
			own_tracking_number, own_planned_loading_date, created_at
		FROM shipments
		WHERE id = ?
	`, query.shipmentID.Bytes()).Scan(&row)
	if result.Error != nil {
		return GetShipmentQueryResponse{}, result.Error
	}

	if result.RowsAffected == 0 || !ownedBy(row.ClientID, query.clientID) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentId", query.shipmentID.String())
	}

	resp := GetShipmentQueryResponse{
		ID:               query.shipmentID,
		Status:           shipment.Status(row.Status).String(),
		TransportType:    kernel.TransportType(row.DominantType).String(),
		PriceEur:         row.PriceEur,
		NeedsManualQuote: row.NeedsManualQuote,
		Choice:           shipment.Choice(row.Choice).String(),
		PaymentMethod:    shipment.PaymentMethod(row.PaymentMethod).String(),
		CreatedAt:        row.CreatedAt,
	}

	var err error
	if resp.ClientID, err = kernel.UUIDFromBytes(row.ClientID[:]); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if resp.PricingRuleID, err = optionalID(row.PricingRuleID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	if resp.InvoiceID, err = optionalID(row.InvoiceID); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	own := OwnTransportView{
		VehicleRegistration: row.OwnVehicleRegistration,
		TrailerRegistration: row.OwnTrailerRegistration,
		Carrier:             row.OwnCarrier,
		TrackingNumber:      row.OwnTrackingNumber,
		PlannedLoadingDate:  row.OwnPlannedLoadingDate,
	}
	if own != (OwnTransportView{}) {
		resp.OwnTransport = &own
	}

	if resp.Members, err = h.members(ctx, query.shipmentID); err != nil {
		return GetShipmentQueryResponse{}, err
	}
	for _, m := range resp.Members {
		resp.TotalVolumeCbm += m.VolumeCbm
		resp.TotalWeightKg += m.WeightKg
	}

	return resp, nil
}

func (h GetShipmentQueryHandler) members(ctx context.Context, shipmentID kernel.UUID) ([]ShipmentMemberView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.tracking_number,
			o.status,
			COALESCE(SUM(p.volume_cbm), 0),
			COALESCE(SUM(p.weight_kg), 0)
		FROM shipment_items si
		JOIN warehouse_orders o ON o.id = si.warehouse_order_id
		LEFT JOIN packages p ON p.warehouse_order_id = o.id
		WHERE si.shipment_id = ?
		GROUP BY o.id, o.tracking_number, o.status, si.position
		ORDER BY si.position
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]ShipmentMemberView, 0)
	for rows.Next() {
		var (
			id     uuid.UUID
			m      ShipmentMemberView
			status int
		)
		if err = rows.Scan(&id, &m.TrackingNumber, &status, &m.VolumeCbm, &m.WeightKg); err != nil {
			return nil, err
		}

		if m.WarehouseOrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		m.Status = warehouse.Status(status).String()
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

func ownedBy(owner uuid.UUID, clientID *kernel.UUID) bool {
	return clientID == nil || owner == clientID.Bytes()
}

func optionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // nullable column
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
