package services

import (
	"context"
	"testing"

	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/database/query"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockJobRepository struct {
	mock.Mock
}

func (m *mockJobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *mockJobRepository) FindAll(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.JobListing), args.Error(1)
}

func (m *mockJobRepository) Get(ctx context.Context, id int) (*models.JobDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobDetail), args.Error(1)
}

func (m *mockJobRepository) Update(ctx context.Context, id int, updates query.FieldUpdates) (*models.Job, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *mockJobRepository) Remove(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type recordingInvalidator struct {
	handles []string
}

func (r *recordingInvalidator) InvalidateCompany(_ context.Context, handle string) {
	r.handles = append(r.handles, handle)
}

func TestWritesInvalidateCompany(t *testing.T) {
	repo := new(mockJobRepository)
	inv := &recordingInvalidator{}
	svc := NewJobService(repo, inv)
	ctx := context.Background()

	repo.On("Create", mock.Anything, mock.Anything).Return(&models.Job{ID: 1, Title: "J", CompanyHandle: "c1"}, nil)
	repo.On("Update", mock.Anything, 1, mock.Anything).Return(&models.Job{ID: 1, Title: "K", CompanyHandle: "c1"}, nil)
	repo.On("Remove", mock.Anything, 1).Return("c1", nil)

	_, err := svc.CreateJob(ctx, &models.CreateJobRequest{Title: "J", CompanyHandle: "c1"})
	require.NoError(t, err)

	title := "K"
	_, err = svc.UpdateJob(ctx, 1, &models.UpdateJobRequest{Title: &title})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJob(ctx, 1))
	assert.Equal(t, []string{"c1", "c1", "c1"}, inv.handles)
}

func TestFailedWritesDoNotInvalidate(t *testing.T) {
	repo := new(mockJobRepository)
	inv := &recordingInvalidator{}
	svc := NewJobService(repo, inv)

	repo.On("Remove", mock.Anything, 9).Return("", apierrors.NewNotFoundError("No job: 9"))
	repo.On("Update", mock.Anything, 9, query.FieldUpdates(nil)).Return(nil, apierrors.NewBadRequestError(query.ErrNoData))

	assert.ErrorIs(t, svc.DeleteJob(context.Background(), 9), apierrors.ErrNotFound)
	_, err := svc.UpdateJob(context.Background(), 9, &models.UpdateJobRequest{})
	assert.ErrorIs(t, err, apierrors.ErrBadRequest)
	assert.Empty(t, inv.handles)
}

func TestNilInvalidator(t *testing.T) {
	repo := new(mockJobRepository)
	svc := NewJobService(repo, nil)
	repo.On("Remove", mock.Anything, 1).Return("c1", nil)

	assert.NoError(t, svc.DeleteJob(context.Background(), 1))
}
