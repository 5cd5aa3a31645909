package handler

import (
	"exam-admin/internal/domain"
	"exam-admin/internal/dto"
	"exam-admin/internal/middleware"
	"exam-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// OrganizationHandler handles organization HTTP requests
type OrganizationHandler struct {
	service   service.OrganizationService
	countMode domain.CountMode
}

// NewOrganizationHandler creates a new OrganizationHandler instance
func NewOrganizationHandler(service service.OrganizationService, countMode domain.CountMode) *OrganizationHandler {
	return &OrganizationHandler{service: service, countMode: countMode}
}

// ListOrganizations godoc
// @Summary List organizations
// @Description Returns a filtered, ordered page of organizations
// @Tags organizations
// @Produce json
// @Param search query string false "Substring of name, description or organization code"
// @Param region query string false "Region"
// @Param status query string false "Status"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.SuccessResponse{data=dto.OrganizationListResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *fiber.Ctx) error {
	resp, err := h.service.ListOrganizations(c.UserContext(), organizationFilter(c), pageRequest(c, h.countMode))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}

// GetOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.OrganizationResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *fiber.Ctx) error {
	resp, err := h.service.GetOrganization(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, ""))
}

// CreateOrganization godoc
// @Summary Create an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.OrganizationRequest true "Organization"
// @Success 201 {object} dto.SuccessResponse{data=dto.OrganizationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *fiber.Ctx) error {
	body, err := middleware.Body(c)
	if err != nil {
		return err
	}
	resp, err := h.service.CreateOrganization(c.UserContext(), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSuccessResponse(resp, "组织创建成功"))
}

// ReplaceOrganization godoc
// @Summary Replace an organization
// @Description Validates the body like a create and applies every provided field
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param organization body dto.OrganizationRequest true "Organization"
// @Success 200 {object} dto.SuccessResponse{data=dto.OrganizationResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) ReplaceOrganization(c *fiber.Ctx) error {
	return h.update(c, true)
}

// PatchOrganization godoc
// @Summary Partially update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param organization body object true "Fields to change"
// @Success 200 {object} dto.SuccessResponse{data=dto.OrganizationResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /organizations/{id} [patch]
func (h *OrganizationHandler) PatchOrganization(c *fiber.Ctx) error {
	return h.update(c, false)
}

func (h *OrganizationHandler) update(c *fiber.Ctx, full bool) error {
	body, err := middleware.Body(c)
	if err != nil {
		return err
	}
	resp, err := h.service.UpdateOrganization(c.UserContext(), c.Params("id"), body, full)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(resp, "组织更新成功"))
}

// DeleteOrganization godoc
// @Summary Delete an organization
// @Description Refused while exams belong to the organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *fiber.Ctx) error {
	if err := h.service.DeleteOrganization(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(nil, "组织删除成功"))
}
