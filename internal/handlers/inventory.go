// internal/handlers/inventory.go
package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alnajjar/makhzan/internal/i18n"
	"github.com/alnajjar/makhzan/internal/services"
	"github.com/alnajjar/makhzan/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
	defaultType      string
}

func NewInventoryHandler(inventoryService *services.InventoryService, defaultType string) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		defaultType:      defaultType,
	}
}

// GET /
func (h *InventoryHandler) Index(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	productType := c.DefaultQuery("type", h.defaultType)
	search := c.Query("search")

	products, err := h.inventoryService.ListProducts(productType, search)
	if err != nil {
		logrus.WithError(err).Error("Failed to list products")
		utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyCommonInternalError))
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Products":    products,
		"CurrentType": productType,
		"Search":      search,
		"Flashes":     utils.ConsumeFlashes(c),
	})
}

// GET /add
func (h *InventoryHandler) ShowAdd(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{
		"DefaultType": h.defaultType,
		"Flashes":     utils.ConsumeFlashes(c),
	})
}

// POST /add
func (h *InventoryHandler) Add(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.AddProductRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyInventoryInvalidInput))
		c.Redirect(http.StatusFound, "/add")
		return
	}

	if _, err := h.inventoryService.AddProduct(&req); err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateSerial):
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyInventoryDuplicateSerial))
		case len(utils.GetValidationErrors(errors.Unwrap(err))) > 0:
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyInventoryInvalidInput))
		default:
			logrus.WithError(err).Error("Failed to add product")
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyCommonInternalError))
		}
		c.Redirect(http.StatusFound, "/add")
		return
	}

	utils.AddFlash(c, utils.FlashSuccess, i18n.T(lang, i18n.KeyInventoryProductAdded))
	c.Redirect(http.StatusFound, "/?type="+url.QueryEscape(req.Type))
}

// GET /delete/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	formerType, err := h.inventoryService.DeleteProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			// No product means no type to redirect to; fall back to the
			// default list.
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyInventoryProductNotFound))
		} else {
			logrus.WithError(err).Error("Failed to delete product")
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyCommonInternalError))
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	utils.AddFlash(c, utils.FlashSuccess, i18n.T(lang, i18n.KeyInventoryProductDeleted))
	c.Redirect(http.StatusFound, "/?type="+url.QueryEscape(formerType))
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
