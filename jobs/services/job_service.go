package services

import (
	"context"

	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/repository"
)

type jobService struct {
	repo      repository.JobRepository
	companies CompanyInvalidator
}

// NewJobService creates a job service. Every successful write invalidates
// the owning company's cached detail through companies, which may be nil.
func NewJobService(repo repository.JobRepository, companies CompanyInvalidator) JobService {
	return &jobService{repo: repo, companies: companies}
}

func (s *jobService) invalidate(ctx context.Context, handle string) {
	if s.companies != nil {
		s.companies.InvalidateCompany(ctx, handle)
	}
}

func (s *jobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	job, err := s.repo.Create(ctx, req.Job())
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, job.CompanyHandle)
	log.InfoWithContext(ctx, "Job %d created for company %s", job.ID, job.CompanyHandle)
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *jobService) GetJob(ctx context.Context, id int) (*models.JobDetail, error) {
	return s.repo.Get(ctx, id)
}

func (s *jobService) UpdateJob(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error) {
	job, err := s.repo.Update(ctx, id, req.Updates())
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, job.CompanyHandle)
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id int) error {
	handle, err := s.repo.Remove(ctx, id)
	if err != nil {
		return err
	}
	s.invalidate(ctx, handle)
	log.InfoWithContext(ctx, "Job %d deleted", id)
	return nil
}
