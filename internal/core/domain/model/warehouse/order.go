package warehouse

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewReceivedOrder, NewCollectedOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewReceivedOrder, NewCollectedOrder or RestoreOrder")
)

// TrackingNumberPrefix starts every internal tracking number.
const TrackingNumberPrefix = "WH-"

// NewTrackingNumber derives the internal tracking number from the order id.
func NewTrackingNumber(id kernel.UUID) string {
	return TrackingNumberPrefix + id.Short()
}

// Order is the warehouse order aggregate root: one inbound consignment owned
// by a single client, together with its package ledger.
//
// Invariants:
//   - id, client id and tracking number are set
//   - the ledger of a ReadyToShip or Released order is not empty
//   - packed weight and packed time are set once the order is packed
//   - packed dimensions are kept only for single-parcel orders
type Order struct {
	id               kernel.UUID
	clientID         kernel.UUID
	sourceDeliveryID *kernel.UUID
	status           Status
	location         *kernel.Location
	trackingNumber   string
	packages         []*Package
	packedWeightKg   *float64
	packedDimensions *kernel.Dimensions
	packedAt         *time.Time
	notes            string

	isConstructed bool
}

// NewReceivedOrder creates the order produced by a delivery receipt. The
// received units form the initial ledger; they may be empty when the
// warehouse only books the delivery and measures later.
func NewReceivedOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	deliveryID kernel.UUID,
	location *kernel.Location,
	packages []*Package,
) (*Order, error) {
	o := &Order{
		status:        AtWarehouse,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		deliveryID.Validate(),
		o.setLocation(location),
		o.setPackages(packages),
	); err != nil {
		return nil, err
	}

	o.sourceDeliveryID = &deliveryID
	o.trackingNumber = NewTrackingNumber(id)
	return o, nil
}

// NewCollectedOrder creates an order from a local collection. It has no
// source delivery and waits for packing straight away.
func NewCollectedOrder(id kernel.UUID, clientID kernel.UUID, location *kernel.Location) (*Order, error) {
	o := &Order{
		status:        ToPack,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setLocation(location),
	); err != nil {
		return nil, err
	}

	o.trackingNumber = NewTrackingNumber(id)
	return o, nil
}

// RestoreState carries persisted fields for RestoreOrder.
type RestoreState struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	SourceDeliveryID *kernel.UUID
	Status           Status
	Location         *kernel.Location
	TrackingNumber   string
	Packages         []*Package
	PackedWeightKg   *float64
	PackedDimensions *kernel.Dimensions
	PackedAt         *time.Time
	Notes            string
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(s RestoreState) (*Order, error) {
	o := &Order{isConstructed: true}

	errList := []error{
		o.setID(s.ID),
		o.setClientID(s.ClientID),
		s.Status.Validate(),
		o.setLocation(s.Location),
		o.setPackages(s.Packages),
	}
	if strings.TrimSpace(s.TrackingNumber) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("internalTrackingNumber"))
	}
	if s.SourceDeliveryID != nil {
		errList = append(errList, s.SourceDeliveryID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	o.sourceDeliveryID = s.SourceDeliveryID
	o.status = s.Status
	o.trackingNumber = s.TrackingNumber
	o.packedWeightKg = s.PackedWeightKg
	o.packedDimensions = s.PackedDimensions
	o.packedAt = s.PackedAt
	o.notes = s.Notes
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                      { return o.id }
func (o *Order) ClientID() kernel.UUID                { return o.clientID }
func (o *Order) SourceDeliveryID() *kernel.UUID       { return o.sourceDeliveryID }
func (o *Order) Status() Status                       { return o.status }
func (o *Order) Location() *kernel.Location           { return o.location }
func (o *Order) TrackingNumber() string               { return o.trackingNumber }
func (o *Order) PackedWeightKg() *float64             { return o.packedWeightKg }
func (o *Order) PackedDimensions() *kernel.Dimensions { return o.packedDimensions }
func (o *Order) PackedAt() *time.Time                 { return o.packedAt }
func (o *Order) Notes() string                        { return o.notes }

// Packages returns a copy of the ledger.
func (o *Order) Packages() []*Package {
	out := make([]*Package, len(o.packages))
	copy(out, o.packages)
	return out
}

// TotalVolumeCbm is the billable volume of the ledger.
func (o *Order) TotalVolumeCbm() float64 {
	return kernel.TotalVolume(o.packages)
}

func (o *Order) TotalWeightKg() float64 {
	var total float64
	for _, p := range o.packages {
		total += p.WeightKg()
	}
	return total
}

// PalletPositions sums pallet positions over the ledger.
func (o *Order) PalletPositions() int {
	var total int
	for _, p := range o.packages {
		total += p.PalletCount()
	}
	return total
}

// ParcelCount counts parcel lines in the ledger.
func (o *Order) ParcelCount() int {
	var total int
	for _, p := range o.packages {
		if p.Type() == kernel.Package {
			total++
		}
	}
	return total
}

func (o *Order) HasPallets() bool {
	return o.PalletPositions() > 0
}

// RequestPacking marks the order as waiting for packing.
func (o *Order) RequestPacking() error {
	next, err := o.status.RequestPacking()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Pack replaces the ledger with the packed units and moves the order to
// ReadyToShip. Units are validated before anything changes; any invalid unit,
// an empty list or a state other than AtWarehouse/ToPack leaves the order
// exactly as it was.
func (o *Order) Pack(units []Unit, notes string, packedAt time.Time) error {
	next, err := o.status.Pack()
	if err != nil {
		return err
	}

	packages, err := BuildPackages(units)
	if err != nil {
		return err
	}

	o.packages = packages
	o.status = next
	o.notes = strings.TrimSpace(notes)

	weight := o.TotalWeightKg()
	o.packedWeightKg = &weight
	o.packedDimensions = nil
	if len(packages) == 1 && packages[0].Type() == kernel.Package {
		o.packedDimensions = packages[0].Dimensions()
	}

	at := packedAt.UTC()
	o.packedAt = &at
	return nil
}

// Release marks the goods as handed over with their shipment.
func (o *Order) Release() error {
	next, err := o.status.Release()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	o.clientID = id
	return nil
}

func (o *Order) setLocation(location *kernel.Location) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}
	o.location = location
	return nil
}

func (o *Order) setPackages(packages []*Package) error {
	for _, p := range packages {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	o.packages = append([]*Package(nil), packages...)
	return nil
}
