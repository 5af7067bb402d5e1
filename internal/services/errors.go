// internal/services/errors.go
package services

import "errors"

// Recoverable error kinds. Handlers branch on these with errors.Is and turn
// them into flash messages; anything else is treated as an internal failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateSerial    = errors.New("serial number already exists")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrProductNotFound    = errors.New("product not found")
	ErrSaleNotFound       = errors.New("sale not found")
)
