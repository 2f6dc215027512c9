// Package deliveryrepo persists expected deliveries and draws receipt
// numbers from a database sequence.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// NumberSequence is the sequence delivery numbers are drawn from.
const NumberSequence = "delivery_number_seq"

type DeliveryDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	SupplierName   string     `gorm:"type:varchar(255);not null"`
	ExpectedAt     *time.Time `gorm:"type:timestamptz"`
	Status         int        `gorm:"type:smallint;not null;index"`
	Condition      int        `gorm:"type:smallint;not null;default:0"`
	ReceivedAt     *time.Time `gorm:"type:timestamptz"`
	DeliveryNumber *int64     `gorm:"uniqueIndex"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:             d.ID().Bytes(),
		ClientID:       d.ClientID().Bytes(),
		SupplierName:   d.SupplierName(),
		ExpectedAt:     d.ExpectedAt(),
		Status:         int(d.Status()),
		Condition:      int(d.Condition()),
		ReceivedAt:     d.ReceivedAt(),
		DeliveryNumber: d.DeliveryNumber(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.RestoreState{
		ID:             id,
		ClientID:       clientID,
		SupplierName:   dto.SupplierName,
		ExpectedAt:     dto.ExpectedAt,
		Status:         delivery.Status(dto.Status),
		Condition:      delivery.Condition(dto.Condition),
		ReceivedAt:     dto.ReceivedAt,
		DeliveryNumber: dto.DeliveryNumber,
	})
}
