package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	promorepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/promo"
)

func upsertItemHandler(logger *log.Logger, svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item domain.JewelryItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		item.ProductType = domain.ProductType(c.Param("productType"))
		saved, err := svc.Upsert(c.Request.Context(), item)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": saved})
	}
}

type promoRequest struct {
	Code        string          `json:"code" binding:"required"`
	Kind        string          `json:"kind" binding:"required"`
	Value       decimal.Decimal `json:"value"`
	PayoutKind  string          `json:"payoutKind"`
	PayoutValue decimal.Decimal `json:"payoutValue"`
	Active      *bool           `json:"active"`
}

func (r promoRequest) toInput() promorepo.UpsertInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return promorepo.UpsertInput{
		Code: r.Code,
		Spec: domain.DiscountSpec{
			Kind:        domain.DiscountKind(r.Kind),
			Value:       r.Value,
			PayoutKind:  domain.PayoutKind(r.PayoutKind),
			PayoutValue: r.PayoutValue,
		},
		Active: active,
	}
}

func listPromosHandler(logger *log.Logger, svc PromoAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		promos, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"promoCodes": promos})
	}
}

func createPromoHandler(logger *log.Logger, svc PromoAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in promoRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code and kind required"})
			return
		}
		promo, err := svc.Create(c.Request.Context(), in.toInput())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"promoCode": promo})
	}
}

func updatePromoHandler(logger *log.Logger, svc PromoAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in promoRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code and kind required"})
			return
		}
		promo, err := svc.Update(c.Request.Context(), c.Param("promoID"), in.toInput())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"promoCode": promo})
	}
}

func deletePromoHandler(logger *log.Logger, svc PromoAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("promoID")); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listOrdersHandler(logger *log.Logger, svc OrderAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		orders, err := svc.List(c.Request.Context(), limit, offset)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders, "limit": limit, "offset": offset})
	}
}

func payoutReportHandler(logger *log.Logger, svc OrderAdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.PayoutReport(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payouts": report})
	}
}
