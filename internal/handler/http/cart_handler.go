package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseadmin/internal/handler/http/dto"
	usecasecontract "courseadmin/internal/usecase/contract"
)

type CartHandler struct {
	cartUsecase usecasecontract.ICartUseCase
}

func NewCartHandler(cartUsecase usecasecontract.ICartUseCase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

// AddToCart handles putting a course in a student's cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	cart, err := h.cartUsecase.AddToCart(c.Request.Context(), req.StudentID, req.CourseID)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, cart)
}

// GetCart handles listing a student's cart
func (h *CartHandler) GetCart(c *gin.Context) {
	studentID := c.Param("studentId")

	items, err := h.cartUsecase.GetCart(c.Request.Context(), studentID)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, items)
}

// RemoveFromCart handles removing a cart entry
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	cartID := c.Param("id")

	if err := h.cartUsecase.RemoveFromCart(c.Request.Context(), cartID); err != nil {
		HandleUseCaseError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Course removed from cart")
}
