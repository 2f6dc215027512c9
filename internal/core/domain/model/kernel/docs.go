// Package kernel provides the shared domain primitives of the fulfillment core.
//
// The package includes:
//   - UUID: identifier value object used by every aggregate
//   - Dimensions, VolumeCbm, TotalVolume: the volume calculator that turns
//     centimetre measurements into billable cubic metres with a packaging buffer
//   - Location: a warehouse storage bin
//
// Everything here is immutable and free of side effects.
package kernel
