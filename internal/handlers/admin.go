package handlers

import (
	"net/http"

	"github.com/m0derNik/FromsApp-Backend/internal/middleware"
	"github.com/m0derNik/FromsApp-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the moderation surface: deleting any user or
// template, and editing any template or form. Routes are mounted
// behind the AdminOnly middleware; the services re-check the role.
type AdminHandler struct {
	templateService *services.TemplateService
	formService     *services.FormService
	cascadeService  *services.CascadeService
}

func NewAdminHandler(templateService *services.TemplateService, formService *services.FormService, cascadeService *services.CascadeService) *AdminHandler {
	return &AdminHandler{
		templateService: templateService,
		formService:     formService,
		cascadeService:  cascadeService,
	}
}

// DeleteUser godoc
// @Summary      Delete a user (admin)
// @Description  Removes the user and everything they own, transitively
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.cascadeService.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "user deleted"})
}

// DeleteTemplate godoc
// @Summary      Delete any template (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Template ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/templates/{id} [delete]
func (h *AdminHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.templateService.Delete(middleware.Actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "template deleted"})
}

// UpdateTemplate godoc
// @Summary      Update any template (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Template ID"
// @Param        request body services.TemplateInput true "Template data"
// @Success      200 {object} models.TemplateDto
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/templates/{id} [put]
func (h *AdminHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dto, err := h.templateService.Update(middleware.Actor(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// UpdateForm godoc
// @Summary      Update any form (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        request body UpdateFormRequest true "New answers"
// @Success      200 {object} models.FormDto
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/forms/{id} [put]
func (h *AdminHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dto, err := h.formService.Update(middleware.Actor(c), id, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}
