package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobcompass/jobcompass-api/internal/apperror"
	"github.com/jobcompass/jobcompass-api/internal/config"
	"github.com/jobcompass/jobcompass-api/internal/dto"
	"github.com/jobcompass/jobcompass-api/internal/middleware"
	"github.com/jobcompass/jobcompass-api/internal/usecase"
	"github.com/jobcompass/jobcompass-api/internal/util"
	"github.com/jobcompass/jobcompass-api/internal/validation"
)

const maxCvSize = 5 * 1024 * 1024

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/profile", h.Get)
	api.Post("/profile", h.Update)
	api.Post("/profile/cv", h.UploadCV)
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.Get(middleware.UserID(c))
	if err != nil {
		return util.ErrorResponse(c, err, "Failed to load profile")
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	req := new(dto.ProfileUpdateRequest)
	if err := parseBody(c, validation.OpProfileUpdate, req); err != nil {
		return util.ErrorResponse(c, err, "")
	}

	profile, err := h.uc.Update(middleware.UserID(c), req)
	if err != nil {
		return util.ErrorResponse(c, err, "Failed to update profile")
	}
	return c.JSON(profile)
}

// UploadCV stores the resume artifact and records its URL on the profile.
// The file is kept as-is: skills stay whatever the client submitted, no
// text extraction happens here.
func (h *ProfileHandler) UploadCV(c *fiber.Ctx) error {
	file, err := c.FormFile("cv")
	if err != nil {
		return util.ErrorResponse(c, &apperror.ValidationError{Field: "cv", Message: "cv file is required"}, "")
	}
	if file.Size > maxCvSize {
		return util.ErrorResponse(c, &apperror.ValidationError{Field: "cv", Message: "cv file size is too large (max 5MB)"}, "")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return util.ErrorResponse(c, &apperror.ValidationError{Field: "cv", Message: fmt.Sprintf("unsupported cv file type %q", ext)}, "")
	}

	name := uuid.NewString() + ext
	savePath := filepath.Join(config.LoadAppConfig().UploadDir, "cv", name)
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, &apperror.StoreError{Op: "save cv file", Err: err}, "Failed to store cv file")
	}

	fileURL := "/uploads/cv/" + name
	if _, err := h.uc.AttachCV(middleware.UserID(c), fileURL); err != nil {
		return util.ErrorResponse(c, err, "Failed to update profile")
	}
	return c.JSON(dto.CvUploadResponse{CvFileURL: fileURL})
}
