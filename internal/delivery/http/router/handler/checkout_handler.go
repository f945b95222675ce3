package handler

import (
	"net/http"

	"mahsoulna/internal/delivery/http/response"
	"mahsoulna/internal/domain/entity"
	"mahsoulna/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CheckoutHandler holds dependencies for the order placement endpoint.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type cartItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required"`
	Name      string          `json:"name"`
	ImagePath string          `json:"image_path"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
}

// Zero is a legitimate coordinate, so the fields carry range tags instead of
// required and the location itself is a required pointer.
type locationRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Address   string  `json:"address"`
}

type placeOrderRequest struct {
	OrderReceipt int64             `json:"orderReceipt" validate:"required"`
	CartItems    []cartItemRequest `json:"cartItems" validate:"required,min=1,dive"`
	TotalAmount  decimal.Decimal   `json:"totalAmount" validate:"required"`
	Location     *locationRequest  `json:"location" validate:"required"`
	ChangeFor    decimal.Decimal   `json:"changeFor"`
	SpecialReq   string            `json:"specialReq"`
}

// PlaceOrder handles the order placement request. A resubmitted receipt code
// returns the original confirmation rather than a duplicate order.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lines := make([]entity.OrderLine, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		lines = append(lines, entity.OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImagePath: item.ImagePath,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID:       tokenUserID,
		OrderReceipt: req.OrderReceipt,
		Location: usecase.DeliveryLocation{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
		},
		Lines:       lines,
		TotalAmount: req.TotalAmount,
		ChangeFor:   req.ChangeFor,
		SpecialReq:  req.SpecialReq,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orderId":      output.Order.ID,
		"orderReceipt": output.Order.OrderReceipt,
		"replayed":     output.Replayed,
	}, "Order placed successfully")
}
