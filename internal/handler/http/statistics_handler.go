package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courseadmin/internal/handler/http/dto"
	usecasecontract "courseadmin/internal/usecase/contract"
)

type StatisticsHandler struct {
	statisticsUsecase usecasecontract.IStatisticsUseCase
}

func NewStatisticsHandler(statisticsUsecase usecasecontract.IStatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{statisticsUsecase: statisticsUsecase}
}

// GetCourseRevenue handles the per-course revenue report, optionally
// windowed by month and year query parameters.
func (h *StatisticsHandler) GetCourseRevenue(c *gin.Context) {
	page, limit := ParsePagination(c)
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	result, err := h.statisticsUsecase.CourseRevenueStats(c.Request.Context(), month, year, page, limit)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, statsResponse(result))
}

// GetMostEnrolledCourses handles the most-enrolled courses report
func (h *StatisticsHandler) GetMostEnrolledCourses(c *gin.Context) {
	page, limit := ParsePagination(c)

	result, err := h.statisticsUsecase.MostEnrolledCourses(c.Request.Context(), page, limit)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, statsResponse(result))
}

// GetUserStats handles the student/teacher headcount report
func (h *StatisticsHandler) GetUserStats(c *gin.Context) {
	page, limit := ParsePagination(c)

	result, err := h.statisticsUsecase.UserStats(c.Request.Context(), page, limit)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, statsResponse(result))
}

func statsResponse[T any](page usecasecontract.Page[T]) dto.StatsResponse[T] {
	return dto.StatsResponse[T]{
		Stats: page.Items,
		Total: page.Total,
		Page:  page.Page,
		Pages: page.Pages,
	}
}
