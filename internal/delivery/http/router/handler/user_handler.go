// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"mahsoulna/internal/delivery/http/middleware"
	"mahsoulna/internal/delivery/http/response"
	"mahsoulna/internal/domain/entity"
	"mahsoulna/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type updateAvatarRequest struct {
	Image string `json:"image" validate:"required"` // base64-encoded image bytes
}

// userResponse is the wire shape of an account. The password hash never
// leaves the server.
type userResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"dateOfBirth"`
	ProfileImage string `json:"profileImage,omitempty"` // base64-encoded
}

func toUserResponse(user *entity.User) userResponse {
	resp := userResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Phone:       user.Phone,
		Gender:      user.Gender,
		DateOfBirth: user.DateOfBirth,
	}
	if len(user.ProfileImage) > 0 {
		resp.ProfileImage = base64.StdEncoding.EncodeToString(user.ProfileImage)
	}

	return resp
}

// authenticatedUserID extracts the user id the auth middleware stored.
func authenticatedUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(middleware.ContextKeyUserID).(int64)

	return id, ok
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken": output.AccessToken,
		"user":        toUserResponse(output.User),
	}, "Login successful")
}

// GetProfile handles the request to fetch an account profile. Users can only
// read their own profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pathUserID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}
	if pathUserID != tokenUserID {
		return response.Forbidden(c, "FORBIDDEN", "Cannot access another user's profile")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), tokenUserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// ChangePassword handles the password rotation request.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid change password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:      tokenUserID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// UpdateAvatar handles replacing the profile picture with a base64 payload.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pathUserID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}
	if pathUserID != tokenUserID {
		return response.Forbidden(c, "FORBIDDEN", "Cannot modify another user's profile")
	}

	var req updateAvatarRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid avatar input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image must be base64-encoded")
	}

	err = h.uc.UpdateProfileImage(c.Request().Context(), &usecase.UpdateProfileImageInput{
		UserID: tokenUserID,
		Image:  image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile image updated successfully")
}

// DisableAccount handles closing the authenticated user's account.
func (h *UserHandler) DisableAccount(c echo.Context) error {
	tokenUserID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.DisableAccount(c.Request().Context(), tokenUserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account disabled successfully")
}

// ListAvatars handles listing the stock profile pictures.
func (h *UserHandler) ListAvatars(c echo.Context) error {
	avatars, err := h.uc.ListAvatars(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	type avatarResponse struct {
		ID    int64  `json:"id"`
		Image string `json:"image"` // base64-encoded
	}

	payload := make([]avatarResponse, 0, len(avatars))
	for _, avatar := range avatars {
		payload = append(payload, avatarResponse{
			ID:    avatar.ID,
			Image: base64.StdEncoding.EncodeToString(avatar.Image),
		})
	}

	return response.Success(c, http.StatusOK, payload, "Avatars retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
