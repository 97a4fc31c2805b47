package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/jobcompass/jobcompass-api/internal/apperror"
	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/jobcompass/jobcompass-api/internal/middleware"
	"github.com/jobcompass/jobcompass-api/internal/usecase"
	"github.com/jobcompass/jobcompass-api/internal/util"
	"github.com/jobcompass/jobcompass-api/internal/validation"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/jobs/search", h.Search)
	api.Post("/jobs/match", h.Match)
	api.Post("/jobs/generate", h.Generate)
	api.Post("/jobs/save", h.Save)
	api.Get("/jobs/saved", h.ListSaved)
}

func (h *JobHandler) Search(c *fiber.Ctx) error {
	req := new(dto.JobSearchRequest)
	if err := parseBody(c, validation.OpJobsSearch, req); err != nil {
		return util.ErrorResponse(c, err, "")
	}

	listings, err := h.uc.Search(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, err, "Failed to search jobs")
	}
	return c.JSON(listings)
}

func (h *JobHandler) Match(c *fiber.Ctx) error {
	req := new(dto.JobMatchRequest)
	if err := parseBody(c, validation.OpJobsMatch, req); err != nil {
		return util.ErrorResponse(c, err, "")
	}

	result, err := h.uc.Match(c.UserContext(), middleware.UserID(c), req.JobDescription)
	if err != nil {
		return util.ErrorResponse(c, err, "Failed to match job")
	}
	return c.JSON(result)
}

func (h *JobHandler) Generate(c *fiber.Ctx) error {
	req := new(dto.GenerateRequest)
	if err := parseBody(c, validation.OpJobsGenerate, req); err != nil {
		return util.ErrorResponse(c, err, "")
	}

	materials, err := h.uc.Generate(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return util.ErrorResponse(c, err, "Failed to generate materials")
	}
	return c.JSON(materials)
}

func (h *JobHandler) Save(c *fiber.Ctx) error {
	req := new(dto.SaveJobRequest)
	if err := parseBody(c, validation.OpJobsSave, req); err != nil {
		return util.ErrorResponse(c, err, "")
	}

	saved, err := h.uc.Save(middleware.UserID(c), req)
	if err != nil {
		return util.ErrorResponse(c, err, "Failed to save job")
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *JobHandler) ListSaved(c *fiber.Ctx) error {
	apps, err := h.uc.ListSaved(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, err, "Failed to load saved jobs")
	}
	return c.JSON(apps)
}

// parseBody schema-checks the raw payload before anything else runs, then
// decodes it into the typed request.
func parseBody(c *fiber.Ctx, op validation.Operation, out any) error {
	body := c.Body()
	if verr := validation.Check(op, body); verr != nil {
		return verr
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &apperror.ValidationError{Message: "request body must be valid JSON"}
	}
	return nil
}
