// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderXUserID carries the acting account's identity. There are no
// sessions; clients pass the account id returned by register/login.
const HeaderXUserID = "X-User-Id"

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	ProfileUC usecase.ProfileUsecase
	ResetUC   usecase.ResetUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	profileUC usecase.ProfileUsecase
	resetUC   usecase.ResetUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		profileUC: params.ProfileUC,
		resetUC:   params.ResetUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

// LoginRequest represents the request body for authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents the request body for a partial profile update.
// Absent fields stay untouched; at least one must be present.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// RequestResetRequest represents the request body for a password reset request.
type RequestResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmResetRequest represents the request body for redeeming a reset token.
type ConfirmResetRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UploadAvatarRequest represents the request body for an avatar upload.
type UploadAvatarRequest struct {
	AvatarData string `json:"avatar_data" validate:"required"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	account, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, account, "Account registered successfully")
}

// Login handles the authentication request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	account, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Login successful")
}

// UpdateProfile handles the partial profile update request.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := h.getAccountID(c)
	if !ok {
		return nil
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid profile input")
	}

	input := &usecase.UpdateProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Bio:      req.Bio,
	}
	if input.IsEmpty() {
		return response.BadRequest(c, "VALIDATION_FAILED", "At least one of full_name, phone or bio must be provided")
	}

	account, err := h.profileUC.UpdateProfile(c.Request().Context(), accountID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Profile updated successfully")
}

// RequestReset handles the password reset request.
func (h *AccountHandler) RequestReset(c echo.Context) error {
	var req RequestResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid reset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	output, err := h.resetUC.RequestReset(c.Request().Context(), &usecase.RequestResetInput{
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Reset token issued")
}

// ConfirmReset handles redeeming a reset token for a new credential.
func (h *AccountHandler) ConfirmReset(c echo.Context) error {
	var req ConfirmResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid confirm input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.resetUC.ConfirmReset(c.Request().Context(), &usecase.ConfirmResetInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password has been reset"}, "Password has been reset")
}

// UploadAvatar handles the avatar upload request.
func (h *AccountHandler) UploadAvatar(c echo.Context) error {
	accountID, ok := h.getAccountID(c)
	if !ok {
		return nil
	}

	var req UploadAvatarRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid avatar input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	imageData, err := decodeAvatarData(req.AvatarData)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "avatar_data must be base64-encoded image bytes")
	}

	account, err := h.profileUC.AssignAvatar(c.Request().Context(), accountID, imageData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Avatar updated successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// getAccountID extracts the acting account's id from the X-User-Id header.
// On failure the 400 response is already written and ok is false.
func (h *AccountHandler) getAccountID(c echo.Context) (uuid.UUID, bool) {
	raw := c.Request().Header.Get(HeaderXUserID)
	if raw == "" {
		_ = response.BadRequest(c, "VALIDATION_FAILED", "Missing X-User-Id header")

		return uuid.Nil, false
	}

	accountID, err := uuid.Parse(raw)
	if err != nil {
		_ = response.BadRequest(c, "VALIDATION_FAILED", "X-User-Id must be a UUID")

		return uuid.Nil, false
	}

	return accountID, true
}

// decodeAvatarData accepts plain base64 or a data URI payload.
func decodeAvatarData(data string) ([]byte, error) {
	if idx := strings.Index(data, ";base64,"); idx >= 0 {
		data = data[idx+len(";base64,"):]
	}

	return base64.StdEncoding.DecodeString(strings.TrimSpace(data))
}
