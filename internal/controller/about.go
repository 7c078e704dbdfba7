package controller

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/core"
)

type AboutController struct {
	aboutService core.AboutService
}

func NewAboutController(aboutService core.AboutService) *AboutController {
	return &AboutController{aboutService: aboutService}
}

func (c *AboutController) GetAboutInfo(w http.ResponseWriter, r *http.Request) {
	team, err := c.aboutService.GetAboutInfo(r.Context())
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	render.JSON(w, r, team)
}
