package service

import (
	"context"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/core"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/model"
)

// DefaultTeam is the developer list served by the about endpoint.
var DefaultTeam = []model.TeamMember{
	{FirstName: "Ofek", LastName: "Vaknin"},
	{FirstName: "Mark David", LastName: "Boyko"},
}

type aboutService struct {
	team []model.TeamMember
}

// NewAboutService snapshots team; later changes to the slice are not seen.
func NewAboutService(team []model.TeamMember) core.AboutService {
	snapshot := make([]model.TeamMember, len(team))
	copy(snapshot, team)
	return &aboutService{team: snapshot}
}

func (s *aboutService) GetAboutInfo(ctx context.Context) ([]model.TeamMember, error) {
	out := make([]model.TeamMember, len(s.team))
	copy(out, s.team)
	return out, nil
}
