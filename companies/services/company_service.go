// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	"github.com/qolzam/jobly/companies/models"
	"github.com/qolzam/jobly/companies/repository"
	"github.com/qolzam/jobly/internal/cache"
	"github.com/qolzam/jobly/internal/pkg/log"
)

const cacheNamespace = "company"

type companyService struct {
	repo  repository.CompanyRepository
	cache *cache.Service
}

// NewCompanyService creates a company service. A nil or disabled cache
// service reads straight from the repository.
func NewCompanyService(repo repository.CompanyRepository, cacheService *cache.Service) CompanyService {
	return &companyService{repo: repo, cache: cacheService}
}

func (s *companyService) cacheKey(handle string) string {
	return s.cache.Key(cacheNamespace, handle)
}

func (s *companyService) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	company, err := s.repo.Create(ctx, req.Company())
	if err != nil {
		return nil, err
	}
	log.InfoWithContext(ctx, "Company %s created", company.Handle)
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *companyService) GetCompany(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	if s.cache.IsEnabled() {
		var cached models.CompanyDetail
		if s.cache.GetCached(ctx, s.cacheKey(handle), &cached) {
			return &cached, nil
		}
	}

	detail, err := s.repo.Get(ctx, handle)
	if err != nil {
		return nil, err
	}

	if s.cache.IsEnabled() {
		s.cache.CacheData(ctx, s.cacheKey(handle), detail)
	}
	return detail, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.repo.Update(ctx, handle, req.Updates())
	if err != nil {
		return nil, err
	}
	s.InvalidateCompany(ctx, handle)
	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, handle string) error {
	if err := s.repo.Remove(ctx, handle); err != nil {
		return err
	}
	s.InvalidateCompany(ctx, handle)
	log.InfoWithContext(ctx, "Company %s deleted", handle)
	return nil
}

func (s *companyService) InvalidateCompany(ctx context.Context, handle string) {
	if !s.cache.IsEnabled() {
		return
	}
	s.cache.Invalidate(ctx, s.cacheKey(handle))
}
