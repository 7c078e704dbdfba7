package controller

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error           string           `json:"error"`
	Message         string           `json:"message,omitempty"`
	ValidCategories []model.Category `json:"validCategories,omitempty"`
}

func respondError(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	render.Status(r, status)
	render.JSON(w, r, resp)
}

func respondServerError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, r, http.StatusInternalServerError, ErrorResponse{
		Error:   "Server error",
		Message: err.Error(),
	})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrorResponse{Error: "Not found"})
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}
