package handlers

import (
	"net/http"

	"github.com/m0derNik/FromsApp-Backend/internal/middleware"
	"github.com/m0derNik/FromsApp-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templateService *services.TemplateService
}

func NewTemplateHandler(templateService *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// ListTemplates godoc
// @Summary      List public templates
// @Description  Paginated listing of public templates with questions and average rating
// @Tags         templates
// @Produce      json
// @Param        page query int false "Page number (min 1)"
// @Param        page_size query int false "Page size"
// @Success      200 {object} models.PagedResponse[models.TemplateDto]
// @Router       /api/templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	page, pageSize := pagingParams(c)

	resp, err := h.templateService.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchTemplates godoc
// @Summary      Search public templates
// @Description  Case-insensitive substring match over title and description
// @Tags         templates
// @Produce      json
// @Param        query query string false "Search query"
// @Param        page query int false "Page number (min 1)"
// @Param        page_size query int false "Page size"
// @Success      200 {object} models.PagedResponse[models.TemplateDto]
// @Router       /api/templates/search [get]
func (h *TemplateHandler) SearchTemplates(c *gin.Context) {
	page, pageSize := pagingParams(c)

	resp, err := h.templateService.Search(c.Query("query"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTemplate godoc
// @Summary      Get a template
// @Description  Template with questions and average rating; private templates require ownership or Admin
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Template ID"
// @Success      200 {object} models.TemplateDto
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dto, err := h.templateService.Get(middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// CreateTemplate godoc
// @Summary      Create a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.TemplateInput true "Template data"
// @Success      201 {object} models.TemplateDto
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var input services.TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dto, err := h.templateService.Create(middleware.Actor(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// UpdateTemplate godoc
// @Summary      Update a template
// @Description  Rewrites the template and replaces its question set
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Template ID"
// @Param        request body services.TemplateInput true "Template data"
// @Success      200 {object} models.TemplateDto
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
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

// DeleteTemplate godoc
// @Summary      Delete a template
// @Description  Removes the template with its questions, forms, answers and ratings
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Template ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
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

// ListTemplateForms godoc
// @Summary      List forms submitted against a template
// @Description  Owner or Admin only
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Template ID"
// @Success      200 {array} models.FormDto
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/templates/{id}/forms [get]
func (h *TemplateHandler) ListTemplateForms(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	forms, err := h.templateService.ListForms(middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}
