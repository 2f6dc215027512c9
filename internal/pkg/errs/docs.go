// Package errs provides standardized error types for the fulfillment service.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a business rule
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: a referenced entity does not exist
//   - StateConflictError: an entity is not in a state that allows the action
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on wrapped chains
//
// The first three form the validation family (see IsValidation). Adapters map
// the families to transport codes; the core never returns transport codes itself.
package errs
