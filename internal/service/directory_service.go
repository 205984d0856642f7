package service

import (
	"context"

	"intranet-api/internal/domain"
	"intranet-api/internal/repository"
)

// DirectoryService serves the public company directory
type DirectoryService struct {
	companies repository.CompanyRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(companies repository.CompanyRepository) *DirectoryService {
	return &DirectoryService{companies: companies}
}

// List returns the active companies. Optional columns the schema does not
// carry come back as null.
func (s *DirectoryService) List(ctx context.Context) ([]domain.CompanyResponse, error) {
	companies, err := s.companies.List(ctx, true)
	if err != nil {
		return nil, err
	}
	responses := make([]domain.CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, companies[i].ToResponse())
	}
	return responses, nil
}
