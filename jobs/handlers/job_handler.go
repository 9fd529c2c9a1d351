package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/server"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/services"
)

// JobHandler handles the /jobs endpoints
type JobHandler struct {
	jobService services.JobService
}

// NewJobHandler creates a new JobHandler with injected dependencies
func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// jobID reads :id; constraints.RequireInt has already rejected bad values.
func jobID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

// CreateJob handles POST /jobs
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := server.DecodeJSON(c, &req); err != nil {
		return err
	}

	job, err := h.jobService.CreateJob(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// ListJobs handles GET /jobs
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	var filter models.JobFilter
	if err := server.DecodeQuery(c, &filter); err != nil {
		return err
	}

	jobs, err := h.jobService.ListJobs(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

// GetJob handles GET /jobs/:id
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	job, err := h.jobService.GetJob(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"job": job})
}

// UpdateJob handles PATCH /jobs/:id
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	var req models.UpdateJobRequest
	if err := server.DecodeJSON(c, &req); err != nil {
		return err
	}

	job, err := h.jobService.UpdateJob(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"job": job})
}

// DeleteJob handles DELETE /jobs/:id
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	if err := h.jobService.DeleteJob(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deleted": id})
}
