package lambdaapi

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/ThushanAshraf/saree-simulate-studio/models"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/filter"
	"github.com/ThushanAshraf/saree-simulate-studio/pkg/storefront"
)

// Curated list names accepted in the {list} path parameter.
const (
	ListFeatured    = "featured"
	ListNewArrivals = "new-arrivals"
	ListBestSellers = "best-sellers"
)

// Products serves GET /products, GET /products/{id}, GET /products/lists/{list} and
// GET /filters/metadata.
func (h *Handler) Products(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("received request", zap.String("method", req.HTTPMethod), zap.String("path", req.Path))

	if req.HTTPMethod != "" && req.HTTPMethod != http.MethodGet {
		return h.respond(http.StatusMethodNotAllowed, models.ErrorResponse("products", "Method not allowed"), nil), nil
	}

	if req.Resource == "/filters/metadata" {
		return h.respond(http.StatusOK, models.SuccessResponse("filters", "Filter metadata fetched successfully", h.service.Facets()), nil), nil
	}

	if id := req.PathParameters["id"]; id != "" {
		p, err := h.service.Product(id)
		if err != nil {
			return h.fail("product", err), nil
		}
		return h.respond(http.StatusOK, models.SuccessResponse("product", "Product fetched successfully", p), nil), nil
	}

	values := queryValues(req)

	if list := req.PathParameters["list"]; list != "" {
		limit, err := storefront.ParseLimit(values.Get("limit"))
		if err != nil {
			return h.fail("products", err), nil
		}
		var products []models.Product
		switch list {
		case ListFeatured:
			products = h.service.Featured(limit)
		case ListNewArrivals:
			products = h.service.NewArrivals(limit)
		case ListBestSellers:
			products = h.service.BestSellers(limit)
		default:
			return h.fail("products", storefront.NewNotFound("Unknown product list")), nil
		}
		return h.respond(http.StatusOK, models.ListResponse("products", "Products fetched successfully", products, &models.ListMeta{
			Total: len(products),
			Count: len(products),
		}), nil), nil
	}

	spec, err := filter.ParseQuery(values)
	if err != nil {
		return h.fail("products", storefront.NewInvalidArgumentf("Invalid filter: %v", err)), nil
	}
	listing := h.service.ListProducts(spec)
	return h.respond(http.StatusOK, models.ListResponse("products", "Products fetched successfully", listing.Products, &models.ListMeta{
		Total:         listing.Total,
		Count:         len(listing.Products),
		ActiveFilters: listing.ActiveFilters,
	}), map[string]string{
		"Cache-Control": "public, max-age=300, must-revalidate", // Catalog is immutable per deployment
	}), nil
}
