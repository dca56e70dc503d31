package handler

import (
	"book-office/internal/app/ds"
	"book-office/internal/app/dto"
)

func toServiceResponse(s *ds.BookProductionService) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		IsActive:    s.IsActive,
		ImageURL:    s.ImageURL,
		Price:       s.Price,
	}
}

func toProjectResponse(p *ds.BookPublishingProject) dto.ProjectResponse {
	resp := dto.ProjectResponse{
		ID:                 p.ID,
		Status:             string(p.Status),
		CreationDatetime:   p.CreationDatetime,
		FormationDatetime:  p.FormationDatetime,
		CompletionDatetime: p.CompletionDatetime,
		Format:             string(p.Format),
		Circulation:        p.Circulation,
		Customer:           p.Customer.Username,
		PersonalDiscount:   p.PersonalDiscount,
	}
	if p.Manager != nil && p.Manager.Username != "" {
		manager := p.Manager.Username
		resp.Manager = &manager
	}
	return resp
}

func toFullProjectResponse(p *ds.BookPublishingProject, selected []ds.SelectedService) dto.FullProjectResponse {
	services := make([]dto.RelatedServiceResponse, len(selected))
	for i, s := range selected {
		services[i] = dto.RelatedServiceResponse{
			ID: s.ID,
			Service: dto.ServiceForProjectResponse{
				ID:       s.Service.ID,
				Title:    s.Service.Title,
				Price:    s.Service.Price,
				ImageURL: s.Service.ImageURL,
			},
			Rate: string(s.Rate),
		}
	}
	return dto.FullProjectResponse{
		ProjectResponse: toProjectResponse(p),
		Services:        services,
	}
}

func toSelectedServiceResponse(s *ds.SelectedService) dto.SelectedServiceResponse {
	return dto.SelectedServiceResponse{
		ID:      s.ID,
		Project: s.ProjectID,
		Service: s.ServiceID,
		Rate:    string(s.Rate),
	}
}

func toUserResponse(u *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsStaff:  u.IsStaff,
	}
}
