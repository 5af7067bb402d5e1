// internal/services/sales_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/alnajjar/makhzan/internal/models"
	"github.com/alnajjar/makhzan/internal/utils"
)

type SalesService struct {
	db *gorm.DB
}

type SellRequest struct {
	Quantity      int     `form:"qty" validate:"required,min=1"`
	CustomerName  string  `form:"name"`
	CustomerPhone string  `form:"phone"`
	Salesman      string  `form:"salesman"`
	Price         float64 `form:"price" validate:"min=0"`
}

// Invoice is a sale joined with its product. The join is a LEFT JOIN: when
// the product was deleted after the sale, Model/SerialNumber/Type come back
// empty and the SpecsInfo snapshot still describes what was sold.
type Invoice struct {
	ID            uint    `json:"id"`
	ProductID     uint    `json:"product_id"`
	QuantitySold  int     `json:"quantity_sold"`
	SaleDate      string  `json:"sale_date"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Salesman      string  `json:"salesman"`
	Price         float64 `json:"price"`
	SpecsInfo     string  `json:"specs_info"`
	Model         string  `json:"model"`
	SerialNumber  string  `json:"serial_number"`
	Type          string  `json:"type" gorm:"column:type"`
}

// SaleListItem is a sale row on the sales listing, with the product model
// resolved when the product still exists.
type SaleListItem struct {
	ID            uint    `json:"id"`
	ProductID     uint    `json:"product_id"`
	QuantitySold  int     `json:"quantity_sold"`
	SaleDate      string  `json:"sale_date"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Salesman      string  `json:"salesman"`
	Price         float64 `json:"price"`
	SpecsInfo     string  `json:"specs_info"`
	Model         string  `json:"model"`
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{db: db}
}

// Sell records a sale against a product. The sale insert and the stock
// decrement commit together in one transaction; the decrement is guarded by
// quantity >= ? so concurrent sales can never drive stock negative.
func (s *SalesService) Sell(productID uint, req *SellRequest) (*models.Sale, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var sale *models.Sale

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if req.Quantity > product.Quantity {
			return ErrInsufficientStock
		}

		sale = &models.Sale{
			ProductID:     productID,
			QuantitySold:  req.Quantity,
			SaleDate:      time.Now().Format(models.SaleDateLayout),
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Salesman:      req.Salesman,
			Price:         req.Price,
			SpecsInfo: fmt.Sprintf("قدرة: %s | إزاحة: %s | لون: %s",
				product.Capacity, product.Displacement, product.Color),
		}
		if err := tx.Create(sale).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND quantity >= ?", productID, req.Quantity).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", req.Quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to update stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Stock moved under us; roll the sale back.
			return ErrInsufficientStock
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}

func (s *SalesService) GetInvoice(saleID uint) (*Invoice, error) {
	var invoice Invoice
	err := s.db.Table("sales").
		Select(`sales.id, sales.product_id, sales.quantity_sold, sales.sale_date,
			sales.customer_name, sales.customer_phone, sales.salesman, sales.price,
			sales.specs_info,
			COALESCE(products.model, '') AS model,
			COALESCE(products.serial_number, '') AS serial_number,
			COALESCE(products.type, '') AS type`).
		Joins("LEFT JOIN products ON products.id = sales.product_id").
		Where("sales.id = ?", saleID).
		Take(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}

	return &invoice, nil
}

// ListSales returns every sale, most recent first.
func (s *SalesService) ListSales() ([]SaleListItem, error) {
	var sales []SaleListItem
	err := s.db.Table("sales").
		Select(`sales.id, sales.product_id, sales.quantity_sold, sales.sale_date,
			sales.customer_name, sales.customer_phone, sales.salesman, sales.price,
			sales.specs_info,
			COALESCE(products.model, '') AS model`).
		Joins("LEFT JOIN products ON products.id = sales.product_id").
		Order("sales.id DESC").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}

	return sales, nil
}

// Return reverses a sale: the product's stock is restored by exactly the
// quantity sold and the sale row is deleted, atomically. A missing sale
// yields ErrSaleNotFound with nothing mutated, which makes repeated returns
// idempotent. If the product was deleted in the meantime the stock increment
// is a no-op; stock is not recreated.
func (s *SalesService) Return(saleID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var sale models.Sale
		if err := tx.First(&sale, saleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSaleNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ?", sale.ProductID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", sale.QuantitySold)).Error; err != nil {
			return fmt.Errorf("failed to restore stock: %w", err)
		}

		if err := tx.Delete(&models.Sale{}, saleID).Error; err != nil {
			return fmt.Errorf("failed to delete sale: %w", err)
		}

		return nil
	})
}
