package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "github.com/Teodagher/jove-jewelry-sub004/internal/service/cart"
)

func createCartHandler(logger *log.Logger, svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, token, err := svc.Create(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"cart": cart, "token": token})
	}
}

func getCartHandler(logger *log.Logger, svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), c.Param("cartID"), c.GetHeader(cartTokenHeader))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func addCartLineHandler(logger *log.Logger, svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddLineInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		cart, err := svc.AddLine(c.Request.Context(), c.Param("cartID"), c.GetHeader(cartTokenHeader), in)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"cart": cart})
	}
}

func changeCartLineHandler(logger *log.Logger, svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		cart, err := svc.ChangeLineQuantity(c.Request.Context(), c.Param("cartID"), c.GetHeader(cartTokenHeader), c.Param("lineID"), in.Quantity)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func removeCartLineHandler(logger *log.Logger, svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveLine(c.Request.Context(), c.Param("cartID"), c.GetHeader(cartTokenHeader), c.Param("lineID"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}
