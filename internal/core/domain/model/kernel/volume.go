package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// PackagingBuffer is applied uniformly on top of the geometric volume.
const PackagingBuffer = 1.05

// ErrDimensionsAreNotConstructed is returned when validating zero-value Dimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError("dimensions must be created via NewDimensions")

// VolumeCbm converts centimetre dimensions into billable cubic metres,
// including the packaging buffer. Inputs are expected to be positive;
// callers validate them (see NewDimensions). The result is never rounded.
func VolumeCbm(widthCm, lengthCm, heightCm float64) float64 {
	return (widthCm / 100 * lengthCm / 100 * heightCm / 100) * PackagingBuffer
}

// Dimensioned is a line of identical physical units that may carry dimensions.
// A nil Dimensions means the line is billed without volume (pallets).
type Dimensioned interface {
	Dimensions() *Dimensions
	Quantity() int
}

// TotalVolume sums the per-unit volume times quantity over items.
// Items without dimensions add zero; a quantity below one counts as one.
func TotalVolume[T Dimensioned](items []T) float64 {
	var total float64
	for _, item := range items {
		d := item.Dimensions()
		if d == nil {
			continue
		}
		total += d.VolumeCbm() * float64(max(item.Quantity(), 1))
	}
	return total
}

// Dimensions is a validated width × length × height in centimetres.
type Dimensions struct {
	widthCm  float64
	lengthCm float64
	heightCm float64
	guard    guard.ConstructorGuard
}

func NewDimensions(widthCm, lengthCm, heightCm float64) (Dimensions, error) {
	if err := errors.Join(
		positive("widthCm", widthCm),
		positive("lengthCm", lengthCm),
		positive("heightCm", heightCm),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		widthCm:  widthCm,
		lengthCm: lengthCm,
		heightCm: heightCm,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) WidthCm() float64  { return d.widthCm }
func (d Dimensions) LengthCm() float64 { return d.lengthCm }
func (d Dimensions) HeightCm() float64 { return d.heightCm }

func (d Dimensions) VolumeCbm() float64 {
	return VolumeCbm(d.widthCm, d.lengthCm, d.heightCm)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g cm", d.widthCm, d.lengthCm, d.heightCm)
}

// ValidateWeightKg rejects missing or non-positive weights.
func ValidateWeightKg(name string, weightKg float64) error {
	return positive(name, weightKg)
}

func positive(name string, v float64) error {
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not greater than 0", v))
	}
	return nil
}
