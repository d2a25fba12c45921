package domain

import "errors"

var (
	// ErrInvalidInput: missing user id or empty item list.
	ErrInvalidInput = errors.New("user id and at least one item are required")
	// ErrInvalidProductID: a line's product id does not parse as an integer.
	ErrInvalidProductID = errors.New("invalid product id")
	// ErrInvalidQuantity: a line's quantity does not parse or is not > 0.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrUnknownProduct: a referenced product is absent from the catalog.
	ErrUnknownProduct = errors.New("product not found in catalog")
	// ErrNotFound: the requested order does not exist.
	ErrNotFound = errors.New("order not found")
)

// IsInvalid reports whether err is one of the request validation errors.
// These fail before any store mutation and never become valid on retry.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidProductID) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrUnknownProduct)
}
