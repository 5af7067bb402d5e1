// internal/models/product.go
package models

// Product is a physical stock item. Serial numbers are unique across the
// whole table; Quantity is decremented by sales and restored by returns.
type Product struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Category     string `json:"category" gorm:"size:100"`
	Model        string `json:"model" gorm:"size:100"`
	SerialNumber string `json:"serial_number" gorm:"size:100;uniqueIndex"`
	Capacity     string `json:"capacity" gorm:"size:100"`
	Displacement string `json:"displacement" gorm:"size:100"`
	Color        string `json:"color" gorm:"size:100"`
	Quantity     int    `json:"quantity" gorm:"not null;default:0"`
	Location     string `json:"location" gorm:"size:100"`
	Type         string `json:"type" gorm:"size:100;index"`
}
