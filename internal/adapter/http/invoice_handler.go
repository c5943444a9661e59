package http

import (
	"net/http"
	"time"

	"zoo-procure-hub/internal/domain/invoice"
	invoiceuc "zoo-procure-hub/internal/usecase/invoice"

	"github.com/labstack/echo/v4"
)

type InvoiceHandler struct{ uc *invoiceuc.Usecase }

func NewInvoiceHandler(uc *invoiceuc.Usecase) *InvoiceHandler { return &InvoiceHandler{uc: uc} }

type createInvoiceReq struct {
	OrderRef      string     `json:"orderId"       validate:"required,hex32"`
	Customer      string     `json:"customer"`
	Amount        *float64   `json:"amount"        validate:"omitempty,gte=0,dec2"`
	Items         string     `json:"items"`
	InvoiceNumber string     `json:"invoiceNumber"`
	DueDate       *time.Time `json:"dueDate"`
	Notes         string     `json:"notes"`
}

type invoiceStatusReq struct {
	Status            invoice.Status `json:"status"            validate:"required"`
	VerifiedBy        string         `json:"verifiedBy"        validate:"omitempty,hex32"`
	VerificationNotes string         `json:"verificationNotes"`
}

type verifyReq struct {
	VerificationNotes string `json:"verificationNotes"`
}

type discrepancyReq struct {
	Discrepancy string `json:"discrepancy" validate:"required"`
}

func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	var req createInvoiceReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	inv, err := h.uc.Create(c.Request().Context(), actor(c), invoiceuc.CreateInput(req))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "Invoice created successfully", data{"invoice": inv})
}

func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	f := invoice.Filter{
		Status:     invoice.Status(c.QueryParam("status")),
		SupplierID: c.QueryParam("supplier"),
	}
	if scope := actor(c).SupplierScope(); scope != "" {
		f.SupplierID = scope
	}
	invs, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"invoices": invs})
}

func (h *InvoiceHandler) SupplierInvoices(c echo.Context) error {
	invs, err := h.uc.ListBySupplier(c.Request().Context(), actor(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"invoices": invs})
}

func (h *InvoiceHandler) InvoicesByStatus(c echo.Context) error {
	invs, err := h.uc.ListByStatus(c.Request().Context(), invoice.Status(pathParam(c, "status")), actor(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"invoices": invs})
}

func (h *InvoiceHandler) InvoiceStats(c echo.Context) error {
	f := invoice.Filter{SupplierID: actor(c).SupplierScope()}
	stats, err := h.uc.Stats(c.Request().Context(), f)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"stats": stats})
}

func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	inv, err := h.uc.GetFor(c.Request().Context(), c.Param("id"), actor(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"invoice": inv})
}

func (h *InvoiceHandler) UpdateInvoice(c echo.Context) error {
	var req invoiceuc.UpdateInput
	if err := bind(c, &req); err != nil {
		return nil
	}
	inv, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Invoice updated successfully", data{"invoice": inv})
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c echo.Context) error {
	var req invoiceStatusReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	inv, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), actor(c), invoiceuc.StatusInput{
		Status:     req.Status,
		VerifiedBy: req.VerifiedBy,
		Notes:      req.VerificationNotes,
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Invoice status updated successfully", data{"invoice": inv})
}

func (h *InvoiceHandler) VerifyInvoice(c echo.Context) error {
	var req verifyReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	inv, err := h.uc.Verify(c.Request().Context(), c.Param("id"), actor(c).UserID, req.VerificationNotes)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Invoice verified successfully", data{"invoice": inv})
}

func (h *InvoiceHandler) AddDiscrepancy(c echo.Context) error {
	var req discrepancyReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	inv, err := h.uc.AddDiscrepancy(c.Request().Context(), c.Param("id"), req.Discrepancy)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Discrepancy added successfully", data{"invoice": inv})
}

func (h *InvoiceHandler) DeleteInvoice(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Invoice deleted successfully", nil)
}
