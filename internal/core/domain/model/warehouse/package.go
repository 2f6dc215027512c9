package warehouse

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrPackageIsNotConstructed = errors.New("Package must be created via NewParcel, NewPallets or RestorePackage")

// Package is one line of the package ledger: a parcel, or one or more pallet
// positions sharing a weight entry. Parcels are always dimensioned; pallets
// may omit dimensions and are then billed by position only.
type Package struct {
	id          kernel.UUID
	unitType    kernel.TransportType
	dimensions  *kernel.Dimensions
	weightKg    float64
	palletCount int

	isConstructed bool
}

// NewParcel records a dimensioned, weighed parcel.
func NewParcel(id kernel.UUID, dimensions kernel.Dimensions, weightKg float64) (*Package, error) {
	if err := errors.Join(
		id.Validate(),
		dimensions.Validate(),
		kernel.ValidateWeightKg("weightKg", weightKg),
	); err != nil {
		return nil, err
	}

	return &Package{
		id:            id,
		unitType:      kernel.Package,
		dimensions:    &dimensions,
		weightKg:      weightKg,
		isConstructed: true,
	}, nil
}

// NewPallets records count pallet positions with their combined weight.
// dimensions, when given, describe a single pallet.
func NewPallets(id kernel.UUID, count int, totalWeightKg float64, dimensions *kernel.Dimensions) (*Package, error) {
	errList := []error{
		id.Validate(),
		kernel.ValidateWeightKg("totalWeightKg", totalWeightKg),
	}
	if count <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%d is not greater than 0", count)))
	}
	if dimensions != nil {
		errList = append(errList, dimensions.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Package{
		id:            id,
		unitType:      kernel.Pallet,
		dimensions:    dimensions,
		weightKg:      totalWeightKg,
		palletCount:   count,
		isConstructed: true,
	}, nil
}

// RestorePackage rebuilds a persisted ledger line.
func RestorePackage(
	id kernel.UUID,
	unitType kernel.TransportType,
	dimensions *kernel.Dimensions,
	weightKg float64,
	palletCount int,
) (*Package, error) {
	switch unitType {
	case kernel.Package:
		if dimensions == nil {
			return nil, errs.NewValueIsRequiredError("dimensions")
		}
		return NewParcel(id, *dimensions, weightKg)
	case kernel.Pallet:
		return NewPallets(id, palletCount, weightKg, dimensions)
	case kernel.UnknownTransportType:
	}
	return nil, unitType.Validate()
}

func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

func (p *Package) ID() kernel.UUID                { return p.id }
func (p *Package) Type() kernel.TransportType     { return p.unitType }
func (p *Package) Dimensions() *kernel.Dimensions { return p.dimensions }
func (p *Package) WeightKg() float64              { return p.weightKg }

// PalletCount is the number of pallet positions; zero for parcels.
func (p *Package) PalletCount() int { return p.palletCount }

// Quantity is the number of identical physical units on the line.
func (p *Package) Quantity() int {
	if p.unitType == kernel.Pallet {
		return p.palletCount
	}
	return 1
}

// VolumeCbm is the billable volume of the line, zero for undimensioned pallets.
func (p *Package) VolumeCbm() float64 {
	return kernel.TotalVolume([]*Package{p})
}
