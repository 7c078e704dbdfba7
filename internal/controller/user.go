package controller

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/core"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/service"
)

type UserController struct {
	userService core.UserService
	logger      *zap.Logger
}

func NewUserController(userService core.UserService, logger *zap.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

func (c *UserController) GetUserDetails(w http.ResponseWriter, r *http.Request) {
	details, err := c.userService.GetUserDetails(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUserID):
			respondError(w, r, http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, r, http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			c.logger.Error("Failed to get user details", zap.Error(err))
			respondServerError(w, r, err)
		}
		return
	}

	render.JSON(w, r, details)
}
