// internal/models/sale.go
package models

// Sale records a completed sale. ProductID is a weak reference: no foreign
// key constraint is declared, and the product row may be deleted while the
// sale survives. SpecsInfo is a denormalized snapshot of the product's
// capacity/displacement/color at sale time so invoices stay stable.
type Sale struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	ProductID     uint    `json:"product_id" gorm:"index"`
	QuantitySold  int     `json:"quantity_sold" gorm:"not null"`
	SaleDate      string  `json:"sale_date" gorm:"size:16"`
	CustomerName  string  `json:"customer_name" gorm:"size:100"`
	CustomerPhone string  `json:"customer_phone" gorm:"size:50"`
	Salesman      string  `json:"salesman" gorm:"size:100"`
	Price         float64 `json:"price"`
	SpecsInfo     string  `json:"specs_info" gorm:"type:text"`
}

// SaleDateLayout is the minute-precision timestamp format stored on sales.
const SaleDateLayout = "2006-01-02 15:04"
