package jobs

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/apierrors"
	"github.com/qolzam/jobly/internal/middleware/authjwt"
	"github.com/qolzam/jobly/internal/testutil"
	"github.com/qolzam/jobly/jobs/handlers"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockJobService struct {
	mock.Mock
}

func (m *mockJobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *mockJobService) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.JobListing, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.JobListing), args.Error(1)
}

func (m *mockJobService) GetJob(ctx context.Context, id int) (*models.JobDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobDetail), args.Error(1)
}

func (m *mockJobService) UpdateJob(ctx context.Context, id int, req *models.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *mockJobService) DeleteJob(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func setupApp(t *testing.T) (*testutil.HTTPHelper, *mockJobService, *testutil.Keys) {
	t.Helper()

	keys := testutil.NewKeys(t)
	svc := new(mockJobService)

	app := fiber.New(fiber.Config{ErrorHandler: apierrors.Handler})
	app.Use(authjwt.New(authjwt.Config{Verifier: keys.Verifier}))
	RegisterRoutes(app, &JobsHandlers{JobHandler: handlers.NewJobHandler(svc)})

	return testutil.NewHTTPHelper(t, app), svc, keys
}

func TestCreateJob(t *testing.T) {
	h, svc, keys := setupApp(t)
	svc.On("CreateJob", mock.Anything, mock.Anything).
		Return(&models.Job{ID: 4, Title: "new", CompanyHandle: "c1"}, nil)

	payload := map[string]interface{}{"title": "new", "salary": 10, "equity": 0.2, "companyHandle": "c1"}

	resp := h.NewRequest(http.MethodPost, "/jobs", payload).WithToken(keys.Token(t, "u1", false)).Send()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = h.NewRequest(http.MethodPost, "/jobs", payload).WithToken(keys.Token(t, "admin", true)).Send()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	job := testutil.DecodeJSON(t, resp)["job"].(map[string]interface{})
	assert.Equal(t, float64(4), job["id"])
	svc.AssertNumberOfCalls(t, "CreateJob", 1)
}

func TestListJobs_Filter(t *testing.T) {
	h, svc, _ := setupApp(t)
	svc.On("ListJobs", mock.Anything, mock.MatchedBy(func(f models.JobFilter) bool {
		return f.HasEquity != nil && *f.HasEquity && f.Title != nil && *f.Title == "j"
	})).Return([]models.JobListing{}, nil)

	resp := h.NewRequest(http.MethodGet, "/jobs?title=j&hasEquity=true", nil).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"jobs": []interface{}{}}, testutil.DecodeJSON(t, resp))
}

func TestGetJob(t *testing.T) {
	h, svc, _ := setupApp(t)
	svc.On("GetJob", mock.Anything, 1).Return(&models.JobDetail{ID: 1, Title: "Job1"}, nil)
	svc.On("GetJob", mock.Anything, 999).Return(nil, apierrors.NewNotFoundError("No job: 999"))

	resp := h.NewRequest(http.MethodGet, "/jobs/1", nil).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.NewRequest(http.MethodGet, "/jobs/999", nil).Send()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No job: 999", testutil.ErrorMessage(t, resp))

	resp = h.NewRequest(http.MethodGet, "/jobs/abc", nil).Send()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateJob_RejectsCompanyHandle(t *testing.T) {
	h, svc, keys := setupApp(t)

	resp := h.NewRequest(http.MethodPatch, "/jobs/1", map[string]interface{}{"companyHandle": "c2"}).
		WithToken(keys.Token(t, "admin", true)).Send()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "UpdateJob", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteJob(t *testing.T) {
	h, svc, keys := setupApp(t)
	svc.On("DeleteJob", mock.Anything, 3).Return(nil)

	resp := h.NewRequest(http.MethodDelete, "/jobs/3", nil).Send()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = h.NewRequest(http.MethodDelete, "/jobs/3", nil).WithToken(keys.Token(t, "admin", true)).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"deleted": float64(3)}, testutil.DecodeJSON(t, resp))
}
