package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseadmin/internal/handler/http/dto"
	usecasecontract "courseadmin/internal/usecase/contract"
)

type CategoryHandler struct {
	categoryUsecase usecasecontract.ICategoryUseCase
}

func NewCategoryHandler(categoryUsecase usecasecontract.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

// ListCategories handles listing all course categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryUsecase.ListCategories(c.Request.Context())
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, categories)
}

// CreateCategory handles creating a course category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	category, err := h.categoryUsecase.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, category)
}
