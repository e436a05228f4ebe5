package httpserver

import (
	"context"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	"github.com/Teodagher/jove-jewelry-sub004/internal/pricing"
	orderrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/order"
	promorepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/promo"
	cartsvc "github.com/Teodagher/jove-jewelry-sub004/internal/service/cart"
	checkoutsvc "github.com/Teodagher/jove-jewelry-sub004/internal/service/checkout"
)

// CatalogService is the storefront's view of the catalog layer.
type CatalogService interface {
	List(ctx context.Context) ([]domain.JewelryItem, error)
	Get(ctx context.Context, productType string) (*domain.JewelryItem, error)
	Quote(ctx context.Context, productType string, state domain.CustomizationState) (*pricing.Quote, error)
	Upsert(ctx context.Context, item domain.JewelryItem) (*domain.JewelryItem, error)
}

type CartService interface {
	Create(ctx context.Context) (*domain.Cart, string, error)
	Get(ctx context.Context, cartID, token string) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID, token string, in cartsvc.AddLineInput) (*domain.Cart, error)
	ChangeLineQuantity(ctx context.Context, cartID, token, lineID string, quantity int) (*domain.Cart, error)
	RemoveLine(ctx context.Context, cartID, token, lineID string) (*domain.Cart, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, in checkoutsvc.Input) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	PreviewDiscount(ctx context.Context, code string, subtotalCents int64) (int64, *domain.PromoCode, error)
}

type PromoAdminService interface {
	List(ctx context.Context) ([]domain.PromoCode, error)
	Create(ctx context.Context, in promorepo.UpsertInput) (*domain.PromoCode, error)
	Update(ctx context.Context, id string, in promorepo.UpsertInput) (*domain.PromoCode, error)
	Delete(ctx context.Context, id string) error
}

type OrderAdminService interface {
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	PayoutReport(ctx context.Context) ([]orderrepo.PayoutRow, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Verify(tokenString string) (string, error)
	TokenTTLSeconds() int
}

// Deps bundles everything the router needs.
type Deps struct {
	CatalogSvc  CatalogService
	CartSvc     CartService
	CheckoutSvc CheckoutService
	PromoAdmin  PromoAdminService
	OrderAdmin  OrderAdminService
	AuthSvc     AuthService
}

// buildRouter wires routes for the storefront API and the admin dashboard.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if allowedOrigins == "" || allowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(allowedOrigins, ",")
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", cartTokenHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/items", listItemsHandler(logger, deps.CatalogSvc))
		api.GET("/items/:productType", getItemHandler(logger, deps.CatalogSvc))
		api.POST("/items/:productType/quote", quoteHandler(logger, deps.CatalogSvc))

		api.POST("/carts", createCartHandler(logger, deps.CartSvc))
		api.GET("/carts/:cartID", getCartHandler(logger, deps.CartSvc))
		api.POST("/carts/:cartID/lines", addCartLineHandler(logger, deps.CartSvc))
		api.PATCH("/carts/:cartID/lines/:lineID", changeCartLineHandler(logger, deps.CartSvc))
		api.DELETE("/carts/:cartID/lines/:lineID", removeCartLineHandler(logger, deps.CartSvc))

		api.POST("/promos/validate", validatePromoHandler(logger, deps.CheckoutSvc))
		api.POST("/checkout", checkoutHandler(logger, deps.CheckoutSvc))
		api.GET("/orders/:orderID", getOrderHandler(logger, deps.CheckoutSvc))
	}

	admin := router.Group("/admin")
	admin.POST("/login", loginHandler(logger, deps.AuthSvc))
	authed := admin.Group("", adminAuthMiddleware(deps.AuthSvc))
	{
		authed.PUT("/items/:productType", upsertItemHandler(logger, deps.CatalogSvc))
		authed.GET("/promos", listPromosHandler(logger, deps.PromoAdmin))
		authed.POST("/promos", createPromoHandler(logger, deps.PromoAdmin))
		authed.PUT("/promos/:promoID", updatePromoHandler(logger, deps.PromoAdmin))
		authed.DELETE("/promos/:promoID", deletePromoHandler(logger, deps.PromoAdmin))
		authed.GET("/orders", listOrdersHandler(logger, deps.OrderAdmin))
		authed.GET("/payouts", payoutReportHandler(logger, deps.OrderAdmin))
	}

	return router
}
