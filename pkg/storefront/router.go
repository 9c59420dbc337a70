package storefront

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHeader carries the cart session id. Requests without one are issued a new id
// in the response header.
const SessionHeader = "X-Cart-Session"

// RouterConfig holds the HTTP surface settings.
type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter builds the gin engine serving the storefront API under /api/v1.
func NewRouter(service *Service, cfg RouterConfig, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	api := router.Group("/api/v1")
	SetupStorefrontRoutes(api, &Handler{service: service, logger: logger})
	return router
}

// SetupStorefrontRoutes registers the catalog and cart routes under /store.
func SetupStorefrontRoutes(router *gin.RouterGroup, h *Handler) {
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", h.ListProducts) // List with filters
		products.GET("/featured", h.Featured)
		products.GET("/new-arrivals", h.NewArrivals)
		products.GET("/best-sellers", h.BestSellers)
		products.GET("/:id", h.GetProduct) // Single product
	}

	store.GET("/filters/metadata", h.FilterMetadata)

	carts := store.Group("/cart", h.cartSession)
	{
		carts.GET("", h.GetCart)
		carts.DELETE("", h.ClearCart)
		carts.POST("/items", h.AddItem)
		carts.GET("/items/:productId", h.InCart)
		carts.PATCH("/items/:productId", h.UpdateItem)
		carts.DELETE("/items/:productId", h.RemoveItem)
	}
}

// corsConfig allows credentials for the listed origins. With no origins configured every
// origin is allowed without credentials.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", SessionHeader},
		ExposeHeaders: []string{SessionHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
