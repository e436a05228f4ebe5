package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	checkoutsvc "github.com/Teodagher/jove-jewelry-sub004/internal/service/checkout"
)

func checkoutHandler(logger *log.Logger, svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkoutsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		in.Token = c.GetHeader(cartTokenHeader)
		in.Market = marketOrDefault(in.Market)
		order, err := svc.Checkout(c.Request.Context(), in)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		display, err := convertForDisplay(order.TotalCents, order.Market)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order, "display": display})
	}
}

func getOrderHandler(logger *log.Logger, svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.GetOrder(c.Request.Context(), c.Param("orderID"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

func validatePromoHandler(logger *log.Logger, svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Code          string `json:"code"`
			SubtotalCents int64  `json:"subtotalCents"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		discount, promo, err := svc.PreviewDiscount(c.Request.Context(), in.Code, in.SubtotalCents)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"code":          promo.Code,
			"kind":          promo.Spec.Kind,
			"discountCents": discount,
		})
	}
}

// marketOrDefault keeps checkout's market field optional on the wire,
// mirroring the query-param default used on reads.
func marketOrDefault(m domain.Market) domain.Market {
	if m == "" {
		return domain.MarketUS
	}
	return m
}
