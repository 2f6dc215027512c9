// Package warehouserepo persists warehouse orders and their package ledger.
// The ledger lives in its own table and is replaced as a whole on update.
package warehouserepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// OrderDTO is a row of warehouse_orders. Packed dimensions are either all set
// or all null.
type OrderDTO struct {
	ID               uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID    `gorm:"type:uuid;not null;index"`
	SourceDeliveryID *uuid.UUID   `gorm:"type:uuid;index"`
	Status           int          `gorm:"type:smallint;not null;index"`
	Location         *string      `gorm:"type:varchar(16)"`
	TrackingNumber   string       `gorm:"type:varchar(32);not null;uniqueIndex"`
	PackedWeightKg   *float64     `gorm:"type:double precision"`
	PackedWidthCm    *float64     `gorm:"type:double precision"`
	PackedLengthCm   *float64     `gorm:"type:double precision"`
	PackedHeightCm   *float64     `gorm:"type:double precision"`
	PackedAt         *time.Time   `gorm:"type:timestamptz"`
	Notes            string       `gorm:"type:text;not null;default:''"`
	CreatedAt        time.Time    `gorm:"autoCreateTime"`
	Packages         []PackageDTO `gorm:"foreignKey:WarehouseOrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "warehouse_orders"
}

// PackageDTO is one ledger line. VolumeCbm is stored for reporting queries;
// the domain recomputes it from the dimensions on load.
type PackageDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position         int       `gorm:"not null"`
	UnitType         int       `gorm:"type:smallint;not null"`
	WidthCm          *float64  `gorm:"type:double precision"`
	LengthCm         *float64  `gorm:"type:double precision"`
	HeightCm         *float64  `gorm:"type:double precision"`
	WeightKg         float64   `gorm:"type:double precision;not null"`
	PalletCount      int       `gorm:"not null;default:0"`
	VolumeCbm        float64   `gorm:"type:double precision;not null;default:0"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(o *warehouse.Order) OrderDTO {
	dto := OrderDTO{
		ID:             o.ID().Bytes(),
		ClientID:       o.ClientID().Bytes(),
		Status:         int(o.Status()),
		TrackingNumber: o.TrackingNumber(),
		PackedWeightKg: o.PackedWeightKg(),
		PackedAt:       o.PackedAt(),
		Notes:          o.Notes(),
	}

	if id := o.SourceDeliveryID(); id != nil {
		raw := id.Bytes()
		dto.SourceDeliveryID = &raw
	}
	if loc := o.Location(); loc != nil {
		code := loc.String()
		dto.Location = &code
	}
	if d := o.PackedDimensions(); d != nil {
		dto.PackedWidthCm, dto.PackedLengthCm, dto.PackedHeightCm = dimensionColumns(d)
	}

	dto.Packages = make([]PackageDTO, 0, len(o.Packages()))
	for i, p := range o.Packages() {
		line := PackageDTO{
			ID:               p.ID().Bytes(),
			WarehouseOrderID: dto.ID,
			Position:         i,
			UnitType:         int(p.Type()),
			WeightKg:         p.WeightKg(),
			PalletCount:      p.PalletCount(),
			VolumeCbm:        p.VolumeCbm(),
		}
		if d := p.Dimensions(); d != nil {
			line.WidthCm, line.LengthCm, line.HeightCm = dimensionColumns(d)
		}
		dto.Packages = append(dto.Packages, line)
	}

	return dto
}

func toDomain(dto OrderDTO) (*warehouse.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var sourceDeliveryID *kernel.UUID
	if dto.SourceDeliveryID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.SourceDeliveryID)[:])
		if dErr != nil {
			return nil, dErr
		}
		sourceDeliveryID = &dID
	}

	var location *kernel.Location
	if dto.Location != nil {
		loc, locErr := kernel.ParseLocation(*dto.Location)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	packedDimensions, err := dimensionsOf(dto.PackedWidthCm, dto.PackedLengthCm, dto.PackedHeightCm)
	if err != nil {
		return nil, err
	}

	packages := make([]*warehouse.Package, 0, len(dto.Packages))
	for _, line := range dto.Packages {
		p, pErr := packageToDomain(line)
		if pErr != nil {
			return nil, pErr
		}
		packages = append(packages, p)
	}

	return warehouse.RestoreOrder(warehouse.RestoreState{
		ID:               id,
		ClientID:         clientID,
		SourceDeliveryID: sourceDeliveryID,
		Status:           warehouse.Status(dto.Status),
		Location:         location,
		TrackingNumber:   dto.TrackingNumber,
		Packages:         packages,
		PackedWeightKg:   dto.PackedWeightKg,
		PackedDimensions: packedDimensions,
		PackedAt:         dto.PackedAt,
		Notes:            dto.Notes,
	})
}

func packageToDomain(line PackageDTO) (*warehouse.Package, error) {
	id, err := kernel.UUIDFromBytes(line.ID[:])
	if err != nil {
		return nil, err
	}
	dims, err := dimensionsOf(line.WidthCm, line.LengthCm, line.HeightCm)
	if err != nil {
		return nil, err
	}
	return warehouse.RestorePackage(id, kernel.TransportType(line.UnitType), dims, line.WeightKg, line.PalletCount)
}

func dimensionColumns(d *kernel.Dimensions) (*float64, *float64, *float64) {
	w, l, h := d.WidthCm(), d.LengthCm(), d.HeightCm()
	return &w, &l, &h
}

func dimensionsOf(w, l, h *float64) (*kernel.Dimensions, error) {
	if w == nil || l == nil || h == nil {
		return nil, nil //nolint:nilnil // absent dimensions are valid
	}
	d, err := kernel.NewDimensions(*w, *l, *h)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
