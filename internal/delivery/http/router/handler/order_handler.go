package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mahsoulna/internal/delivery/http/response"
	"mahsoulna/internal/domain/entity"
	"mahsoulna/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order history handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type orderResponse struct {
	OrderID      int64           `json:"order_id"`
	OrderReceipt int64           `json:"order_receipt"`
	OrderDate    string          `json:"order_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OrderStatus  string          `json:"order_status"`
	ChangeFor    decimal.Decimal `json:"change_for"`
	SpecialReq   string          `json:"special_req"`
}

func toOrderResponse(order *entity.Order) orderResponse {
	return orderResponse{
		OrderID:      order.ID,
		OrderReceipt: order.OrderReceipt,
		OrderDate:    order.OrderDate.Format("2006-01-02 15:04:05"),
		TotalAmount:  order.TotalAmount,
		OrderStatus:  order.OrderStatus,
		ChangeFor:    order.ChangeFor,
		SpecialReq:   order.SpecialReq,
	}
}

// ListOrders handles the order history request. The status query parameter
// filters by exact status equality; omitted or "all" disables the filter.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pathUserID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}
	if pathUserID != tokenUserID {
		return response.Forbidden(c, "FORBIDDEN", "Cannot access another user's orders")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), &usecase.ListOrdersInput{
		UserID: tokenUserID,
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		payload = append(payload, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, payload, "Orders retrieved successfully")
}

// GetOrderLines handles the cart snapshot request. The snapshot comes back as
// the serialized document the order was placed with.
func (h *OrderHandler) GetOrderLines(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	lines, err := h.uc.GetOrderLines(c.Request().Context(), tokenUserID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(lines) == 0 {
		return response.Success(c, http.StatusOK, []any{}, "Order items retrieved successfully")
	}

	serialized, err := json.Marshal(lines)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := []map[string]string{
		{"ordered_products": string(serialized)},
	}

	return response.Success(c, http.StatusOK, payload, "Order items retrieved successfully")
}

// ReceiptQR handles rendering the order's receipt code as a PNG QR image.
func (h *OrderHandler) ReceiptQR(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	png, err := h.uc.ReceiptQR(c.Request().Context(), tokenUserID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
