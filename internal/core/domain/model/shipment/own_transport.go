package shipment

import (
	"strings"
	"time"
	"unicode"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// OwnTransportDetails describe the client's own pickup. All fields are optional
// except that package shipments give carrier and tracking number together.
type OwnTransportDetails struct {
	VehicleRegistration string
	TrailerRegistration string
	Carrier             string
	TrackingNumber      string
	PlannedLoadingDate  *time.Time
}

func (d OwnTransportDetails) normalized() OwnTransportDetails {
	d.VehicleRegistration = strings.TrimSpace(d.VehicleRegistration)
	d.TrailerRegistration = strings.TrimSpace(d.TrailerRegistration)
	d.Carrier = strings.TrimSpace(d.Carrier)
	d.TrackingNumber = strings.TrimSpace(d.TrackingNumber)
	return d
}

// IsEmpty reports whether no detail is set.
func (d OwnTransportDetails) IsEmpty() bool {
	d = d.normalized()
	return d.VehicleRegistration == "" && d.TrailerRegistration == "" &&
		d.Carrier == "" && d.TrackingNumber == "" && d.PlannedLoadingDate == nil
}

// validateFor applies the per-type rule. Registrations of pallet pickups are
// checked at release, not here.
func (d OwnTransportDetails) validateFor(t kernel.TransportType) error {
	if t != kernel.Package {
		return nil
	}
	switch {
	case d.Carrier != "" && d.TrackingNumber == "":
		return errs.NewValueIsRequiredErrorWithCause("trackingNumber", errs.NewValueIsInvalidError("carrier given without tracking number"))
	case d.Carrier == "" && d.TrackingNumber != "":
		return errs.NewValueIsRequiredErrorWithCause("carrier", errs.NewValueIsInvalidError("tracking number given without carrier"))
	}
	return nil
}

// NormalizeRegistration upper-cases a plate and drops spaces and dashes.
func NormalizeRegistration(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
