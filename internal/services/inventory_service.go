// internal/services/inventory_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/alnajjar/makhzan/internal/models"
	"github.com/alnajjar/makhzan/internal/utils"
)

type InventoryService struct {
	db *gorm.DB
}

type AddProductRequest struct {
	Category     string `form:"category"`
	Model        string `form:"model"`
	SerialNumber string `form:"serial" validate:"required"`
	Capacity     string `form:"capacity"`
	Displacement string `form:"displacement"`
	Color        string `form:"color"`
	Quantity     int    `form:"quantity" validate:"min=0"`
	Location     string `form:"location"`
	Type         string `form:"type" validate:"required"`
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// ListProducts returns every product of the given type, optionally narrowed
// by a substring match against model, serial number or capacity. No
// pagination; the full result set is returned in storage order.
func (s *InventoryService) ListProducts(productType, search string) ([]models.Product, error) {
	query := s.db.Where("type = ?", productType)

	if search != "" {
		term := "%" + search + "%"
		query = query.Where(
			"model LIKE ? OR serial_number LIKE ? OR capacity LIKE ?",
			term, term, term,
		)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *InventoryService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// AddProduct inserts a new product. A duplicate serial number is rejected
// with ErrDuplicateSerial and leaves no partial write behind.
func (s *InventoryService) AddProduct(req *AddProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Category:     req.Category,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Capacity:     req.Capacity,
		Displacement: req.Displacement,
		Color:        req.Color,
		Quantity:     req.Quantity,
		Location:     req.Location,
		Type:         req.Type,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).
			Where("serial_number = ?", req.SerialNumber).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check serial number: %w", err)
		}
		if count > 0 {
			return ErrDuplicateSerial
		}

		if err := tx.Create(product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateSerial
			}
			return fmt.Errorf("failed to create product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct unconditionally removes the product row, even when sales
// still reference it, and returns the former type for the redirect target.
func (s *InventoryService) DeleteProduct(id uint) (string, error) {
	var formerType string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("database error: %w", err)
		}
		formerType = product.Type

		if err := tx.Delete(&models.Product{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return formerType, nil
}
