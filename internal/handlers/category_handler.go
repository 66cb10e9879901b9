package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetly/internal/models"
	"budgetly/internal/services"
)

// CategoryHandler serves the shared category catalog.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryQuery filters the catalog listing.
type CategoryQuery struct {
	Type string `form:"type" binding:"omitempty,category_type"`
}

// ListCategories returns the catalog ordered by name.
// @Summary     List categories
// @Description List the shared income and expense categories
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       type query string false "Filter by category type (income/expense)"
// @Success     200 {array} models.Category "List of categories"
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var q CategoryQuery
	if err := bindQuery(c, &q); err != nil {
		respondWithError(c, err)
		return
	}

	var categoryType *models.CategoryType
	if q.Type != "" {
		t := models.CategoryType(q.Type)
		categoryType = &t
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), categoryType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryByID handles the retrieval of a specific category
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} models.Category "Category details"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}
