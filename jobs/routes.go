package jobs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/authrole"
	"github.com/qolzam/jobly/internal/middleware/constraints"
	"github.com/qolzam/jobly/jobs/handlers"
)

// JobsHandlers holds all the handlers this router needs.
type JobsHandlers struct {
	JobHandler *handlers.JobHandler
}

// RegisterRoutes mounts /jobs. Reads are public; writes are admin only.
func RegisterRoutes(router fiber.Router, h *JobsHandlers) {
	group := router.Group("/jobs")
	requireID := constraints.RequireInt("id")
	admin := authrole.Admin()

	group.Get("/", h.JobHandler.ListJobs)
	group.Get("/:id", requireID, h.JobHandler.GetJob)

	group.Post("/", admin, h.JobHandler.CreateJob)
	group.Patch("/:id", requireID, admin, h.JobHandler.UpdateJob)
	group.Delete("/:id", requireID, admin, h.JobHandler.DeleteJob)
}
