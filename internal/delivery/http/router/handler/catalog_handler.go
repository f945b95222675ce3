package handler

import (
	"net/http"
	"strconv"

	"mahsoulna/internal/delivery/http/response"
	"mahsoulna/internal/domain/entity"
	"mahsoulna/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CatalogHandler holds dependencies for the product browsing handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

type categoryResponse struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	ImagePath    string `json:"image_path"`
}

type productResponse struct {
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ImagePath    string          `json:"image_path"`
	ProductBrand string          `json:"product_brand"`
	CategoryID   int64           `json:"category_id"`
}

func toProductResponses(products []*entity.Product) []productResponse {
	payload := make([]productResponse, 0, len(products))
	for _, product := range products {
		payload = append(payload, productResponse{
			ProductID:    product.ID,
			Name:         product.Name,
			Price:        product.Price,
			ImagePath:    product.ImagePath,
			ProductBrand: product.Brand,
			CategoryID:   product.CategoryID,
		})
	}

	return payload
}

// Categories handles the category listing request.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		payload = append(payload, categoryResponse{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			ImagePath:    category.ImagePath,
		})
	}

	return response.Success(c, http.StatusOK, payload, "Categories retrieved successfully")
}

// ProductsByCategory handles listing the products of one category.
func (h *CatalogHandler) ProductsByCategory(c echo.Context) error {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	products, err := h.uc.ProductsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// RandomItems handles the storefront highlight request.
func (h *CatalogHandler) RandomItems(c echo.Context) error {
	products, err := h.uc.Highlights(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Random items retrieved successfully")
}

// RecentlyAddedItems handles the new arrivals request.
func (h *CatalogHandler) RecentlyAddedItems(c echo.Context) error {
	products, err := h.uc.NewArrivals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Recently added items retrieved successfully")
}

// Search handles product search by name or brand substring.
func (h *CatalogHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return response.BadRequest(c, "VALIDATION", "Missing search query")
	}

	products, err := h.uc.Search(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Search results retrieved successfully")
}
