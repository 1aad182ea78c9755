package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseadmin/internal/handler/http/dto"
	usecasecontract "courseadmin/internal/usecase/contract"
)

type EnrollmentHandler struct {
	enrollmentUsecase usecasecontract.IEnrollmentUseCase
}

func NewEnrollmentHandler(enrollmentUsecase usecasecontract.IEnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentUsecase: enrollmentUsecase}
}

// Enroll handles enrolling a student in a course
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	enrollment, err := h.enrollmentUsecase.Enroll(c.Request.Context(), req.StudentID, req.CourseID)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, enrollment)
}

// CompleteLesson marks a lesson completed on an enrollment and returns the
// enrollment with recomputed progress
func (h *EnrollmentHandler) CompleteLesson(c *gin.Context) {
	enrollmentID := c.Param("id")
	lessonID := c.Param("lessonId")

	enrollment, err := h.enrollmentUsecase.CompleteLesson(c.Request.Context(), enrollmentID, lessonID)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, enrollment)
}
