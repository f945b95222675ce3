package handler

import (
	"net/http"
	"strconv"
	"strings"

	"mahsoulna/internal/delivery/http/response"
	"mahsoulna/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for wishlist handlers. Product detail
// lookups go through the catalog usecase so the wishlist usecase stays a pure
// membership store.
type WishlistHandler struct {
	wishlistUc usecase.WishlistUsecase
	catalogUc  usecase.CatalogUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(wishlistUc usecase.WishlistUsecase, catalogUc usecase.CatalogUsecase) *WishlistHandler {
	return &WishlistHandler{wishlistUc: wishlistUc, catalogUc: catalogUc}
}

type toggleWishlistRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// Toggle handles adding a product to the wishlist, or removing it when it is
// already present.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	req := new(toggleWishlistRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	output, err := h.wishlistUc.Toggle(c.Request().Context(), tokenUserID, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Item removed from the wishlist"
	if output.Added {
		message = "Item added to the wishlist"
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"productId": req.ProductID,
		"added":     output.Added,
	}, message)
}

// ListItemIDs handles listing the product ids on a user's wishlist.
func (h *WishlistHandler) ListItemIDs(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pathUserID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}
	if pathUserID != tokenUserID {
		return response.Forbidden(c, "FORBIDDEN", "Cannot access another user's wishlist")
	}

	ids, err := h.wishlistUc.ListProductIDs(c.Request().Context(), tokenUserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"userId":        tokenUserID,
		"wishlistItems": ids,
	}, "Wishlist retrieved successfully")
}

// ListProducts handles resolving wishlist item ids into product details. Ids
// arrive either as a comma separated wishlistItemIds value or repeated query
// parameters.
func (h *WishlistHandler) ListProducts(c echo.Context) error {
	ids, err := parseWishlistItemIDs(c)
	if err != nil || len(ids) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid wishlist item IDs")
	}

	products, err := h.catalogUc.ProductsByIDs(c.Request().Context(), ids)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Wishlist products retrieved successfully")
}

func parseWishlistItemIDs(c echo.Context) ([]int64, error) {
	values := c.QueryParams()["wishlistItemIds"]
	if bracketed, ok := c.QueryParams()["wishlistItemIds[]"]; ok {
		values = append(values, bracketed...)
	}

	ids := make([]int64, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			ids = append(ids, id)
		}
	}

	return ids, nil
}
