package http

import (
	"net/http"

	"zoo-procure-hub/internal/domain/order"
	orderuc "zoo-procure-hub/internal/usecase/order"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct{ uc *orderuc.Usecase }

func NewOrderHandler(uc *orderuc.Usecase) *OrderHandler { return &OrderHandler{uc: uc} }

type createOrderReq struct {
	ItemName        string         `json:"itemName"        validate:"required"`
	Quantity        float64        `json:"quantity"        validate:"required"`
	Price           float64        `json:"price"           validate:"gte=0,dec2"`
	Reason          string         `json:"reason"          validate:"required"`
	Supplier        string         `json:"supplier"        validate:"required,hex32"`
	FeedType        string         `json:"feedType"        validate:"required"`
	Priority        order.Priority `json:"priority"        validate:"omitempty,oneof=Low Medium High"`
	Department      string         `json:"department"`
	DeliveryAddress string         `json:"deliveryAddress"`
	ContactPerson   string         `json:"contactPerson"`
	Phone           string         `json:"phone"`
}

type orderStatusReq struct {
	Status order.Status `json:"status" validate:"required"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	o, err := h.uc.Create(c.Request().Context(), actor(c).UserID, orderuc.CreateInput(req))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "Order created successfully", data{"order": o})
}

// ListOrders narrows suppliers to their own orders; everyone else may filter
// by status, supplier or requester.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	f := order.Filter{
		Status:      order.Status(c.QueryParam("status")),
		SupplierID:  c.QueryParam("supplier"),
		RequesterID: c.QueryParam("requester"),
	}
	if scope := actor(c).SupplierScope(); scope != "" {
		f.SupplierID = scope
	}
	orders, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"orders": orders})
}

func (h *OrderHandler) MyOrders(c echo.Context) error {
	orders, err := h.uc.ListByRequester(c.Request().Context(), actor(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"orders": orders})
}

func (h *OrderHandler) SupplierOrders(c echo.Context) error {
	orders, err := h.uc.ListBySupplier(c.Request().Context(), actor(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"orders": orders})
}

func (h *OrderHandler) OrdersByStatus(c echo.Context) error {
	orders, err := h.uc.ListByStatus(c.Request().Context(), order.Status(pathParam(c, "status")), actor(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"orders": orders})
}

func (h *OrderHandler) OrderStats(c echo.Context) error {
	f := order.Filter{SupplierID: actor(c).SupplierScope()}
	stats, err := h.uc.Stats(c.Request().Context(), f)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"stats": stats})
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	o, err := h.uc.GetFor(c.Request().Context(), c.Param("id"), actor(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"order": o})
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var req orderuc.UpdateInput
	if err := bind(c, &req); err != nil {
		return nil
	}
	o, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Order updated successfully", data{"order": o})
}

// UpdateOrderStatus answers 200 even when the invoice step failed; the
// failure is reported in the warning field.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req orderStatusReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	res, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status, actor(c))
	if err != nil {
		return fail(c, err)
	}
	d := data{"order": res.Order}
	if res.Invoice != nil {
		d["invoice"] = res.Invoice
	}
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: res.Message,
		Data:    d,
		Warning: res.Warning,
	})
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Order deleted successfully", nil)
}
