package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// MaxSupplierNameLength bounds the supplier name column.
const MaxSupplierNameLength = 255

// Delivery is a promise of incoming goods (DeliveryExpected).
type Delivery struct {
	id             kernel.UUID
	clientID       kernel.UUID
	supplierName   string
	expectedAt     *time.Time
	status         Status
	condition      Condition
	receivedAt     *time.Time
	deliveryNumber *int64

	isConstructed bool
}

// NewDelivery registers an expected delivery requested by a client.
func NewDelivery(id, clientID kernel.UUID, supplierName string, expectedAt *time.Time) (*Delivery, error) {
	d := &Delivery{status: Expected, isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		validateClientID(clientID),
		d.setSupplierName(supplierName),
	); err != nil {
		return nil, err
	}

	d.id = id
	d.clientID = clientID
	d.expectedAt = expectedAt
	return d, nil
}

// RestoreState carries persisted fields for RestoreDelivery.
type RestoreState struct {
	ID             kernel.UUID
	ClientID       kernel.UUID
	SupplierName   string
	ExpectedAt     *time.Time
	Status         Status
	Condition      Condition
	ReceivedAt     *time.Time
	DeliveryNumber *int64
}

func RestoreDelivery(s RestoreState) (*Delivery, error) {
	d, err := NewDelivery(s.ID, s.ClientID, s.SupplierName, s.ExpectedAt)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	if s.Status == Received && (s.DeliveryNumber == nil || s.ReceivedAt == nil) {
		return nil, errs.NewValueIsRequiredError("deliveryNumber")
	}

	d.status = s.Status
	d.condition = s.Condition
	d.receivedAt = s.ReceivedAt
	d.deliveryNumber = s.DeliveryNumber
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID        { return d.id }
func (d *Delivery) ClientID() kernel.UUID  { return d.clientID }
func (d *Delivery) SupplierName() string   { return d.supplierName }
func (d *Delivery) ExpectedAt() *time.Time { return d.expectedAt }
func (d *Delivery) Status() Status         { return d.status }
func (d *Delivery) Condition() Condition   { return d.condition }
func (d *Delivery) ReceivedAt() *time.Time { return d.receivedAt }
func (d *Delivery) DeliveryNumber() *int64 { return d.deliveryNumber }

// Receive records the warehouse receipt. number must come from a monotonic
// source shared by all receipts.
func (d *Delivery) Receive(number int64, condition Condition, receivedAt time.Time) error {
	next, err := d.status.Receive()
	if err != nil {
		return err
	}

	var errList []error
	if number <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"deliveryNumber", fmt.Errorf("%d is not greater than 0", number)))
	}
	errList = append(errList, condition.Validate())
	if err = errors.Join(errList...); err != nil {
		return err
	}

	at := receivedAt.UTC()
	d.status = next
	d.condition = condition
	d.receivedAt = &at
	d.deliveryNumber = &number
	return nil
}

func (d *Delivery) setSupplierName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("supplierName")
	}
	if len(name) > MaxSupplierNameLength {
		return errs.NewValueIsOutOfRangeError("supplierName length", len(name), 1, MaxSupplierNameLength)
	}
	d.supplierName = name
	return nil
}

func validateClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	return nil
}
