package http

import (
	"net/http"
	"strings"

	"zoo-procure-hub/internal/domain/user"
	authuc "zoo-procure-hub/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *authuc.Usecase }

func NewAuthHandler(uc *authuc.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	Username   string    `json:"username"   validate:"required"`
	Email      string    `json:"email"      validate:"required,email"`
	Password   string    `json:"password"   validate:"required,min=6"`
	Name       string    `json:"name"       validate:"required"`
	Role       user.Role `json:"role"       validate:"omitempty,oneof=staff supplier admin invoice"`
	Zoo        string    `json:"zoo"`
	Company    string    `json:"company"`
	Speciality string    `json:"speciality"`
	Contact    string    `json:"contact"`
	Address    string    `json:"address"`
}

// loginReq accepts the username in place of the email.
type loginReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	s, err := h.uc.Register(c.Request().Context(), authuc.RegisterInput(req))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusCreated, "User registered successfully", data{"user": s.User, "token": s.Token})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bind(c, &req); err != nil {
		return nil
	}
	login := strings.TrimSpace(req.Email)
	if login == "" {
		login = strings.TrimSpace(req.Username)
	}
	if login == "" {
		return c.JSON(http.StatusUnprocessableEntity, Response{
			Message: "validation failed",
			Details: []FieldError{{Field: "email", Message: "is required"}},
		})
	}
	s, err := h.uc.Login(c.Request().Context(), login, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Login successful", data{"user": s.User, "token": s.Token})
}

func (h *AuthHandler) Profile(c echo.Context) error {
	u, err := h.uc.Profile(c.Request().Context(), actor(c).UserID)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"user": u})
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req authuc.ProfileInput
	if err := bind(c, &req); err != nil {
		return nil
	}
	u, err := h.uc.UpdateProfile(c.Request().Context(), actor(c).UserID, req)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "Profile updated successfully", data{"user": u})
}

func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"users": users})
}

func (h *AuthHandler) ListUsersByRole(c echo.Context) error {
	users, err := h.uc.ListByRole(c.Request().Context(), user.Role(c.Param("role")))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"users": users})
}

func (h *AuthHandler) UpdateUser(c echo.Context) error {
	var req authuc.UserUpdateInput
	if err := bind(c, &req); err != nil {
		return nil
	}
	u, err := h.uc.UpdateUser(c.Request().Context(), c.Param("userId"), req)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "User updated successfully", data{"user": u})
}

func (h *AuthHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.DeactivateUser(c.Request().Context(), c.Param("userId")); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *AuthHandler) ListSuppliers(c echo.Context) error {
	sups, err := h.uc.ListSupplierUsers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"suppliers": sups})
}

func (h *AuthHandler) SearchSuppliers(c echo.Context) error {
	sups, err := h.uc.SearchSupplierUsers(c.Request().Context(), pathParam(c, "speciality"))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, "", data{"suppliers": sups})
}
