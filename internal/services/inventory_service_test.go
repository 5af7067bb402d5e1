// internal/services/inventory_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/alnajjar/makhzan/internal/models"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *InventoryService
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.svc = NewInventoryService(suite.db)
}

func (suite *InventoryServiceTestSuite) TestAddAndListProducts() {
	product, err := suite.svc.AddProduct(&AddProductRequest{
		Category:     "ضاغط",
		Model:        "LG-900",
		SerialNumber: "SN1",
		Capacity:     "3HP",
		Displacement: "12cc",
		Color:        "أبيض",
		Quantity:     10,
		Location:     "A1",
		Type:         "كباس",
	})
	assert.NoError(suite.T(), err)
	assert.NotZero(suite.T(), product.ID)

	products, err := suite.svc.ListProducts("كباس", "")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "SN1", products[0].SerialNumber)
	assert.Equal(suite.T(), 10, products[0].Quantity)
}

func (suite *InventoryServiceTestSuite) TestDuplicateSerialRejected() {
	_, err := suite.svc.AddProduct(&AddProductRequest{
		SerialNumber: "SN1", Quantity: 5, Type: "كباس",
	})
	assert.NoError(suite.T(), err)

	_, err = suite.svc.AddProduct(&AddProductRequest{
		SerialNumber: "SN1", Quantity: 3, Type: "فريزر", Model: "other",
	})
	assert.ErrorIs(suite.T(), err, ErrDuplicateSerial)

	// No partial write: exactly one row for that serial.
	var count int64
	suite.db.Model(&models.Product{}).Where("serial_number = ?", "SN1").Count(&count)
	assert.EqualValues(suite.T(), 1, count)
}

func (suite *InventoryServiceTestSuite) TestAddProductValidation() {
	_, err := suite.svc.AddProduct(&AddProductRequest{Quantity: 1, Type: "كباس"})
	assert.Error(suite.T(), err)

	var count int64
	suite.db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(suite.T(), 0, count)
}

func (suite *InventoryServiceTestSuite) TestListProductsFiltersByType() {
	addProductFixture(suite.T(), suite.db, "SN1", "كباس", 1)
	addProductFixture(suite.T(), suite.db, "SN2", "فريزر", 1)

	products, err := suite.svc.ListProducts("كباس", "")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "SN1", products[0].SerialNumber)
}

func (suite *InventoryServiceTestSuite) TestSearchMatchesModelSerialOrCapacity() {
	// Matches by model substring.
	suite.db.Create(&models.Product{Model: "AB-100", SerialNumber: "X1", Capacity: "3HP", Type: "كباس"})
	// Matches by serial substring.
	suite.db.Create(&models.Product{Model: "ZZ", SerialNumber: "AB99", Capacity: "5HP", Type: "كباس"})
	// Matches by capacity substring.
	suite.db.Create(&models.Product{Model: "QQ", SerialNumber: "X2", Capacity: "AB", Type: "كباس"})
	// No match.
	suite.db.Create(&models.Product{Model: "QQ", SerialNumber: "X3", Capacity: "5HP", Type: "كباس"})
	// Matching text but wrong type.
	suite.db.Create(&models.Product{Model: "AB-100", SerialNumber: "X4", Capacity: "3HP", Type: "فريزر"})

	products, err := suite.svc.ListProducts("كباس", "AB")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), products, 3)
	for _, p := range products {
		assert.Equal(suite.T(), "كباس", p.Type)
	}
}

func (suite *InventoryServiceTestSuite) TestDeleteProductReturnsFormerType() {
	product := addProductFixture(suite.T(), suite.db, "SN1", "كباس", 2)

	formerType, err := suite.svc.DeleteProduct(product.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "كباس", formerType)

	products, err := suite.svc.ListProducts("كباس", "")
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), products)
}

func (suite *InventoryServiceTestSuite) TestDeleteMissingProduct() {
	_, err := suite.svc.DeleteProduct(12345)
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *InventoryServiceTestSuite) TestGetProduct() {
	product := addProductFixture(suite.T(), suite.db, "SN1", "كباس", 2)

	got, err := suite.svc.GetProduct(product.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product.SerialNumber, got.SerialNumber)

	_, err = suite.svc.GetProduct(999)
	assert.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func TestInventoryServiceSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
