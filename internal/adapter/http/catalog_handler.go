package http

import (
	"net/http"

	feedtypeuc "zoo-procure-hub/internal/usecase/feedtype"
	supplieruc "zoo-procure-hub/internal/usecase/supplier"

	"github.com/labstack/echo/v4"
)

type FeedTypeHandler struct{ uc *feedtypeuc.Usecase }

func NewFeedTypeHandler(uc *feedtypeuc.Usecase) *FeedTypeHandler { return &FeedTypeHandler{uc: uc} }

type createFeedTypeReq struct {
	Name          string  `json:"name"          validate:"required"`
	PricePerTonne float64 `json:"pricePerTonne" validate:"gte=0,dec2"`
	Description   string  `json:"description"`
	Category      string  `json:"category"      validate:"required"`
}

func (h *FeedTypeHandler) CreateFeedType(c echo.Context) error {
	var req createFeedTypeReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	f, err := h.uc.Create(c.Request().Context(), feedtypeuc.CreateInput(req))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "Feed type created successfully", data{"feedType": f})
}

func (h *FeedTypeHandler) ListFeedTypes(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"feedTypes": list})
}

func (h *FeedTypeHandler) FeedTypesByCategory(c echo.Context) error {
	list, err := h.uc.SearchByCategory(c.Request().Context(), pathParam(c, "category"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"feedTypes": list})
}

func (h *FeedTypeHandler) FeedTypeStats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"stats": stats})
}

func (h *FeedTypeHandler) GetFeedType(c echo.Context) error {
	f, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"feedType": f})
}

func (h *FeedTypeHandler) UpdateFeedType(c echo.Context) error {
	var req feedtypeuc.UpdateInput
	if err := bind(c, &req); err != nil {
		return nil
	}
	f, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Feed type updated successfully", data{"feedType": f})
}

func (h *FeedTypeHandler) DeleteFeedType(c echo.Context) error {
	if err := h.uc.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Feed type deleted successfully", nil)
}

type SupplierHandler struct{ uc *supplieruc.Usecase }

func NewSupplierHandler(uc *supplieruc.Usecase) *SupplierHandler { return &SupplierHandler{uc: uc} }

type ratingReq struct {
	Rating *float64 `json:"rating" validate:"required"`
}

func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	var req supplieruc.CreateInput
	if err := bind(c, &req); err != nil {
		return nil
	}
	s, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "Supplier created successfully", data{"supplier": s})
}

func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"suppliers": list})
}

func (h *SupplierHandler) SuppliersBySpeciality(c echo.Context) error {
	list, err := h.uc.SearchBySpeciality(c.Request().Context(), pathParam(c, "speciality"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"suppliers": list})
}

func (h *SupplierHandler) SupplierStats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"stats": stats})
}

func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	s, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"supplier": s})
}

func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	var req supplieruc.UpdateInput
	if err := bind(c, &req); err != nil {
		return nil
	}
	s, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Supplier updated successfully", data{"supplier": s})
}

func (h *SupplierHandler) UpdateRating(c echo.Context) error {
	var req ratingReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	s, err := h.uc.UpdateRating(c.Request().Context(), c.Param("id"), *req.Rating)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Supplier rating updated successfully", data{"supplier": s})
}

func (h *SupplierHandler) DeleteSupplier(c echo.Context) error {
	if err := h.uc.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Supplier deleted successfully", nil)
}
