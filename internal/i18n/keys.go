// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyCommonInternalError = "common.internal_error"

	// Authentication
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLogoutSuccess      = "auth.logout_success"

	// Inventory
	KeyInventoryDuplicateSerial = "inventory.duplicate_serial"
	KeyInventoryProductAdded    = "inventory.product_added"
	KeyInventoryProductDeleted  = "inventory.product_deleted"
	KeyInventoryProductNotFound = "inventory.product_not_found"
	KeyInventoryInvalidInput    = "inventory.invalid_input"

	// Sales
	KeySalesInsufficientStock = "sales.insufficient_stock"
	KeySalesSaleNotFound      = "sales.sale_not_found"
	KeySalesSaleReturned      = "sales.sale_returned"
	KeySalesInvalidInput      = "sales.invalid_input"
)
