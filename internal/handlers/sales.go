// internal/handlers/sales.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alnajjar/makhzan/internal/i18n"
	"github.com/alnajjar/makhzan/internal/services"
	"github.com/alnajjar/makhzan/internal/utils"
)

type SalesHandler struct {
	salesService     *services.SalesService
	inventoryService *services.InventoryService
}

func NewSalesHandler(salesService *services.SalesService, inventoryService *services.InventoryService) *SalesHandler {
	return &SalesHandler{
		salesService:     salesService,
		inventoryService: inventoryService,
	}
}

// GET /sell/:id
func (h *SalesHandler) ShowSell(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	product, err := h.inventoryService.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyInventoryProductNotFound))
		} else {
			logrus.WithError(err).Error("Failed to load product for sale")
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyCommonInternalError))
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "sell.html", gin.H{
		"Product": product,
		"Flashes": utils.ConsumeFlashes(c),
	})
}

// POST /sell/:id
func (h *SalesHandler) Sell(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	sellURL := fmt.Sprintf("/sell/%d", id)

	var req services.SellRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeySalesInvalidInput))
		c.Redirect(http.StatusFound, sellURL)
		return
	}

	sale, err := h.salesService.Sell(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyInventoryProductNotFound))
			c.Redirect(http.StatusFound, "/")
		case errors.Is(err, services.ErrInsufficientStock):
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeySalesInsufficientStock))
			c.Redirect(http.StatusFound, sellURL)
		case len(utils.GetValidationErrors(errors.Unwrap(err))) > 0:
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeySalesInvalidInput))
			c.Redirect(http.StatusFound, sellURL)
		default:
			logrus.WithError(err).Error("Failed to record sale")
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyCommonInternalError))
			c.Redirect(http.StatusFound, sellURL)
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/invoice/%d", sale.ID))
}

// GET /invoice/:id
func (h *SalesHandler) Invoice(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		c.Redirect(http.StatusFound, "/sales")
		return
	}

	invoice, err := h.salesService.GetInvoice(id)
	if err != nil {
		if errors.Is(err, services.ErrSaleNotFound) {
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeySalesSaleNotFound))
		} else {
			logrus.WithError(err).Error("Failed to load invoice")
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyCommonInternalError))
		}
		c.Redirect(http.StatusFound, "/sales")
		return
	}

	c.HTML(http.StatusOK, "invoice.html", gin.H{
		"Invoice": invoice,
		"Flashes": utils.ConsumeFlashes(c),
	})
}

// GET /sales
func (h *SalesHandler) ListSales(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sales, err := h.salesService.ListSales()
	if err != nil {
		logrus.WithError(err).Error("Failed to list sales")
		utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyCommonInternalError))
	}

	c.HTML(http.StatusOK, "sales.html", gin.H{
		"Sales":   sales,
		"Flashes": utils.ConsumeFlashes(c),
	})
}

// GET /return/:id
func (h *SalesHandler) Return(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		c.Redirect(http.StatusFound, "/sales")
		return
	}

	if err := h.salesService.Return(id); err != nil {
		// An already-returned or unknown sale is a no-op, not a failure.
		if !errors.Is(err, services.ErrSaleNotFound) {
			logrus.WithError(err).Error("Failed to return sale")
			utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyCommonInternalError))
		}
		c.Redirect(http.StatusFound, "/sales")
		return
	}

	utils.AddFlash(c, utils.FlashSuccess, i18n.T(lang, i18n.KeySalesSaleReturned))
	c.Redirect(http.StatusFound, "/sales")
}
