package warehouse

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Unit is a physical unit reported by the warehouse, either on receipt or
// when packing. It is one of PalletUnit or ParcelUnit.
type Unit interface {
	Type() kernel.TransportType
	toPackage(id kernel.UUID) (*Package, error)
}

// PalletUnit is Count pallet positions weighing TotalWeightKg together.
// Dimensions are optional; when given they describe one pallet and all three
// must be set.
type PalletUnit struct {
	Count         int
	TotalWeightKg float64
	WidthCm       float64
	LengthCm      float64
	HeightCm      float64
}

func (PalletUnit) Type() kernel.TransportType { return kernel.Pallet }

func (u PalletUnit) toPackage(id kernel.UUID) (*Package, error) {
	var dims *kernel.Dimensions
	if u.WidthCm != 0 || u.LengthCm != 0 || u.HeightCm != 0 {
		d, err := kernel.NewDimensions(u.WidthCm, u.LengthCm, u.HeightCm)
		if err != nil {
			return nil, err
		}
		dims = &d
	}
	return NewPallets(id, u.Count, u.TotalWeightKg, dims)
}

// ParcelUnit is a single parcel; every field is mandatory and positive.
type ParcelUnit struct {
	WidthCm  float64
	LengthCm float64
	HeightCm float64
	WeightKg float64
}

func (ParcelUnit) Type() kernel.TransportType { return kernel.Package }

func (u ParcelUnit) toPackage(id kernel.UUID) (*Package, error) {
	dims, dimsErr := kernel.NewDimensions(u.WidthCm, u.LengthCm, u.HeightCm)
	if err := errors.Join(dimsErr, kernel.ValidateWeightKg("weightKg", u.WeightKg)); err != nil {
		return nil, err
	}
	return NewParcel(id, dims, u.WeightKg)
}

// BuildPackages turns units into ledger lines. It validates every unit and
// returns all problems at once; on any error no package is returned.
func BuildPackages(units []Unit) ([]*Package, error) {
	if len(units) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	packages := make([]*Package, 0, len(units))
	var errList []error
	for i, u := range units {
		if u == nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, errs.NewValueIsRequiredError("item")))
			continue
		}
		p, err := u.toPackage(kernel.NewUUID())
		if err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		packages = append(packages, p)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return packages, nil
}
