package handlers

import (
	"net/http"

	"github.com/m0derNik/FromsApp-Backend/internal/middleware"
	"github.com/m0derNik/FromsApp-Backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	formService *services.FormService
}

func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

type UpdateFormRequest struct {
	Answers []services.AnswerInput `json:"answers" binding:"required,min=1"`
}

// ListForms godoc
// @Summary      List own forms
// @Description  Paginated listing of the caller's submissions
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (min 1)"
// @Param        page_size query int false "Page size"
// @Success      200 {object} models.PagedResponse[models.FormDto]
// @Failure      401 {object} ErrorResponse
// @Router       /api/forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	page, pageSize := pagingParams(c)

	resp, err := h.formService.List(middleware.Actor(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetForm godoc
// @Summary      Get a form
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Success      200 {object} models.FormDto
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	dto, err := h.formService.Get(middleware.Actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// CreateForm godoc
// @Summary      Submit a form
// @Description  Creates the form and its answers against an existing template
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.FormInput true "Form data"
// @Success      201 {object} models.FormDto
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input services.FormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dto, err := h.formService.Create(middleware.Actor(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// UpdateForm godoc
// @Summary      Update a form
// @Description  Replaces the form's answer set
// @Tags         forms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Param        request body UpdateFormRequest true "New answers"
// @Success      200 {object} models.FormDto
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
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

// DeleteForm godoc
// @Summary      Delete a form
// @Description  Removes the form together with its answers
// @Tags         forms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Form ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.formService.Delete(middleware.Actor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "form deleted"})
}
