package lambdaapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/storefront"
)

const entityCart = "cart"

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// Cart serves the cart resource:
//
//	GET    /cart                      current cart
//	DELETE /cart                      clear
//	POST   /cart/items                add {productId, quantity}
//	GET    /cart/items/{productId}    membership
//	PATCH  /cart/items/{productId}    set {quantity}
//	DELETE /cart/items/{productId}    remove
func (h *Handler) Cart(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("received request", zap.String("method", req.HTTPMethod), zap.String("path", req.Path))

	session := header(req, storefront.SessionHeader)
	if session == "" {
		session = uuid.NewString()
	}
	sessionHeader := map[string]string{storefront.SessionHeader: session}

	ok := func(status int, message string, result storefront.CartResult) events.APIGatewayProxyResponse {
		body := models.SuccessResponse(entityCart, message, result.Cart).WithNotifications(result.Notifications)
		return h.respond(status, body, sessionHeader)
	}
	fail := func(err error) events.APIGatewayProxyResponse {
		resp := h.fail(entityCart, err)
		resp.Headers[storefront.SessionHeader] = session
		return resp
	}

	productID := req.PathParameters["productId"]

	switch {
	case req.HTTPMethod == http.MethodGet && productID == "":
		state := h.service.Cart(ctx, session)
		return ok(http.StatusOK, "Cart fetched successfully", storefront.CartResult{Cart: state}), nil

	case req.HTTPMethod == http.MethodGet:
		body := models.SuccessResponse(entityCart, "Cart lookup completed", storefront.InCartResponse{
			ProductID: productID,
			InCart:    h.service.InCart(ctx, session, productID),
		})
		return h.respond(http.StatusOK, body, sessionHeader), nil

	case req.HTTPMethod == http.MethodDelete && productID == "":
		return ok(http.StatusOK, "Cart cleared", h.service.ClearCart(ctx, session)), nil

	case req.HTTPMethod == http.MethodDelete:
		return ok(http.StatusOK, "Item removed", h.service.RemoveItem(ctx, session, productID)), nil

	case req.HTTPMethod == http.MethodPost && productID == "":
		var body cartItemRequest
		if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
			return fail(storefront.NewInvalidArgumentf("Invalid request body: %v", err)), nil
		}
		quantity := 1
		if body.Quantity != nil {
			quantity = *body.Quantity
		}
		result, err := h.service.AddItem(ctx, session, body.ProductID, quantity)
		if err != nil {
			return fail(err), nil
		}
		return ok(http.StatusCreated, "Item added to cart", result), nil

	case req.HTTPMethod == http.MethodPatch && productID != "":
		var body cartItemRequest
		if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
			return fail(storefront.NewInvalidArgumentf("Invalid request body: %v", err)), nil
		}
		if body.Quantity == nil {
			return fail(storefront.NewInvalidArgument(storefront.ErrMsgQuantityRequired)), nil
		}
		result, err := h.service.UpdateItem(ctx, session, productID, *body.Quantity)
		if err != nil {
			return fail(err), nil
		}
		return ok(http.StatusOK, "Cart updated", result), nil
	}

	return h.respond(http.StatusMethodNotAllowed, models.ErrorResponse(entityCart, "Method not allowed"), sessionHeader), nil
}
