package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Teodagher/jove-jewelry-sub004/internal/currency"
	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

const cartTokenHeader = "X-Cart-Token"

// respondError maps domain errors to HTTP statuses. Configuration errors
// are deployment defects and get logged loudly before the 500.
func respondError(c *gin.Context, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidOrder):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConfiguration):
		logger.Printf("configuration error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		logger.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// displayPrice is a converted, display-only amount. USD stays the
// authoritative stored price.
type displayPrice struct {
	AmountCents  int64  `json:"amountCents"`
	CurrencyCode string `json:"currencyCode"`
}

// marketFromQuery reads the market query param, defaulting to the US
// storefront when absent. An unknown value surfaces as a config error from
// the currency tables.
func marketFromQuery(c *gin.Context) domain.Market {
	return domain.Market(c.DefaultQuery("market", string(domain.MarketUS)))
}

func convertForDisplay(amountCents int64, market domain.Market) (*displayPrice, error) {
	converted, err := currency.Convert(amountCents, market)
	if err != nil {
		return nil, err
	}
	return &displayPrice{AmountCents: converted.AmountCents, CurrencyCode: converted.CurrencyCode}, nil
}
