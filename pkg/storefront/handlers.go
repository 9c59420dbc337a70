package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/filter"
)

const (
	entityProducts = "products"
	entityProduct  = "product"
	entityFilters  = "filters"
	entityCart     = "cart"

	sessionKey = "cartSession"
)

// Handler adapts Service to gin.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"` // Defaults to 1
}

type updateItemRequest struct {
	Quantity *int `json:"quantity"`
}

// InCartResponse answers whether a product is in the session cart.
type InCartResponse struct {
	ProductID string `json:"productId"`
	InCart    bool   `json:"inCart"`
}

// ListProducts handles GET /store/products.
func (h *Handler) ListProducts(c *gin.Context) {
	spec, err := filter.ParseQuery(c.Request.URL.Query())
	if err != nil {
		h.fail(c, entityProducts, NewInvalidArgumentf("Invalid filter: %v", err))
		return
	}

	listing := h.service.ListProducts(spec)
	c.JSON(http.StatusOK, models.ListResponse(entityProducts, "Products fetched successfully", listing.Products, &models.ListMeta{
		Total:         listing.Total,
		Count:         len(listing.Products),
		ActiveFilters: listing.ActiveFilters,
	}))
}

// Featured handles GET /store/products/featured.
func (h *Handler) Featured(c *gin.Context) {
	h.curated(c, "Featured products fetched successfully", h.service.Featured)
}

// NewArrivals handles GET /store/products/new-arrivals.
func (h *Handler) NewArrivals(c *gin.Context) {
	h.curated(c, "New arrivals fetched successfully", h.service.NewArrivals)
}

// BestSellers handles GET /store/products/best-sellers.
func (h *Handler) BestSellers(c *gin.Context) {
	h.curated(c, "Best sellers fetched successfully", h.service.BestSellers)
}

func (h *Handler) curated(c *gin.Context, message string, list func(int) []models.Product) {
	limit, err := ParseLimit(c.Query("limit"))
	if err != nil {
		h.fail(c, entityProducts, err)
		return
	}
	products := list(limit)
	c.JSON(http.StatusOK, models.ListResponse(entityProducts, message, products, &models.ListMeta{
		Total: len(products),
		Count: len(products),
	}))
}

// GetProduct handles GET /store/products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.service.Product(c.Param("id"))
	if err != nil {
		h.fail(c, entityProduct, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(entityProduct, "Product fetched successfully", p))
}

// FilterMetadata handles GET /store/filters/metadata.
func (h *Handler) FilterMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(entityFilters, "Filter metadata fetched successfully", h.service.Facets()))
}

// GetCart handles GET /store/cart.
func (h *Handler) GetCart(c *gin.Context) {
	state := h.service.Cart(c.Request.Context(), session(c))
	c.JSON(http.StatusOK, models.SuccessResponse(entityCart, "Cart fetched successfully", state))
}

// InCart handles GET /store/cart/items/:productId.
func (h *Handler) InCart(c *gin.Context) {
	id := c.Param("productId")
	c.JSON(http.StatusOK, models.SuccessResponse(entityCart, "Cart lookup completed", InCartResponse{
		ProductID: id,
		InCart:    h.service.InCart(c.Request.Context(), session(c), id),
	}))
}

// AddItem handles POST /store/cart/items.
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, entityCart, NewInvalidArgumentf("Invalid request body: %v", err))
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	result, err := h.service.AddItem(c.Request.Context(), session(c), req.ProductID, quantity)
	if err != nil {
		h.fail(c, entityCart, err)
		return
	}
	h.cartOK(c, http.StatusCreated, "Item added to cart", result)
}

// UpdateItem handles PATCH /store/cart/items/:productId.
func (h *Handler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, entityCart, NewInvalidArgumentf("Invalid request body: %v", err))
		return
	}
	if req.Quantity == nil {
		h.fail(c, entityCart, NewInvalidArgument(ErrMsgQuantityRequired))
		return
	}

	result, err := h.service.UpdateItem(c.Request.Context(), session(c), c.Param("productId"), *req.Quantity)
	if err != nil {
		h.fail(c, entityCart, err)
		return
	}
	h.cartOK(c, http.StatusOK, "Cart updated", result)
}

// RemoveItem handles DELETE /store/cart/items/:productId.
func (h *Handler) RemoveItem(c *gin.Context) {
	result := h.service.RemoveItem(c.Request.Context(), session(c), c.Param("productId"))
	h.cartOK(c, http.StatusOK, "Item removed", result)
}

// ClearCart handles DELETE /store/cart.
func (h *Handler) ClearCart(c *gin.Context) {
	result := h.service.ClearCart(c.Request.Context(), session(c))
	h.cartOK(c, http.StatusOK, "Cart cleared", result)
}

func (h *Handler) cartOK(c *gin.Context, status int, message string, result CartResult) {
	c.JSON(status, models.SuccessResponse(entityCart, message, result.Cart).WithNotifications(result.Notifications))
}

func (h *Handler) fail(c *gin.Context, entity string, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, models.ErrorResponse(entity, err.Error()))
}

// cartSession resolves the session id from the request header, issuing one when the
// client has none yet.
func (h *Handler) cartSession(c *gin.Context) {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SessionHeader, id)
	c.Set(sessionKey, id)
	c.Next()
}

func session(c *gin.Context) string {
	return c.GetString(sessionKey)
}
