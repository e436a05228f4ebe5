package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	"github.com/Teodagher/jove-jewelry-sub004/internal/pricing"
)

type itemSummary struct {
	ID             string             `json:"id"`
	ProductType    domain.ProductType `json:"productType"`
	Name           string             `json:"name"`
	BasePriceCents int64              `json:"basePriceCents"`
	Display        *displayPrice      `json:"display,omitempty"`
}

type itemResponse struct {
	domain.JewelryItem
	Display *displayPrice `json:"display,omitempty"`
}

type quoteResponse struct {
	*pricing.Quote
	Display *displayPrice `json:"display,omitempty"`
}

func listItemsHandler(logger *log.Logger, svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		market := marketFromQuery(c)
		out := make([]itemSummary, 0, len(items))
		for _, item := range items {
			display, err := convertForDisplay(item.BasePriceCents, market)
			if err != nil {
				respondError(c, logger, err)
				return
			}
			out = append(out, itemSummary{
				ID:             item.ID,
				ProductType:    item.ProductType,
				Name:           item.Name,
				BasePriceCents: item.BasePriceCents,
				Display:        display,
			})
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

func getItemHandler(logger *log.Logger, svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("productType"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		display, err := convertForDisplay(item.BasePriceCents, marketFromQuery(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, itemResponse{JewelryItem: *item, Display: display})
	}
}

func quoteHandler(logger *log.Logger, svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var state domain.CustomizationState
		if err := c.ShouldBindJSON(&state); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		quote, err := svc.Quote(c.Request.Context(), c.Param("productType"), state)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		display, err := convertForDisplay(quote.TotalCents, marketFromQuery(c))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, quoteResponse{Quote: quote, Display: display})
	}
}
