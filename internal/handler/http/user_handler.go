package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseadmin/internal/handler/http/dto"
	usecasecontract "courseadmin/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	ListTeachers(*gin.Context)
	ListStudents(*gin.Context)
	SearchTeachers(*gin.Context)
	SearchStudents(*gin.Context)
	GetUserDetail(*gin.Context)
	CreateTeacher(*gin.Context)
	UpdateUserStatus(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userAdminUsecase  usecasecontract.IUserAdminUseCase
	userDetailUsecase usecasecontract.IUserDetailUseCase
}

func NewUserHandler(userAdminUsecase usecasecontract.IUserAdminUseCase, userDetailUsecase usecasecontract.IUserDetailUseCase) *UserHandler {
	return &UserHandler{
		userAdminUsecase:  userAdminUsecase,
		userDetailUsecase: userDetailUsecase,
	}
}

// ListTeachers handles the paginated teacher listing
func (h *UserHandler) ListTeachers(c *gin.Context) {
	page, limit := ParsePagination(c)

	result, err := h.userAdminUsecase.ListTeachers(c.Request.Context(), "", page, limit)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, usersResponse(result))
}

// ListStudents handles the paginated student listing
func (h *UserHandler) ListStudents(c *gin.Context) {
	page, limit := ParsePagination(c)

	result, err := h.userAdminUsecase.ListStudents(c.Request.Context(), "", page, limit)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, usersResponse(result))
}

// SearchTeachers handles the teacher search by full name or email
func (h *UserHandler) SearchTeachers(c *gin.Context) {
	page, limit := ParsePagination(c)
	search := c.Query("search")

	result, err := h.userAdminUsecase.ListTeachers(c.Request.Context(), search, page, limit)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, usersResponse(result))
}

// SearchStudents handles the student search by full name or email
func (h *UserHandler) SearchStudents(c *gin.Context) {
	page, limit := ParsePagination(c)
	search := c.Query("search")

	result, err := h.userAdminUsecase.ListStudents(c.Request.Context(), search, page, limit)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, usersResponse(result))
}

// GetUserDetail handles the role-specific user detail view
func (h *UserHandler) GetUserDetail(c *gin.Context) {
	userID := c.Param("id")

	detail, err := h.userDetailUsecase.GetUserDetail(c.Request.Context(), userID)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserDetailResponse{User: detail})
}

// CreateTeacher handles teacher account provisioning
func (h *UserHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	teacher, err := h.userAdminUsecase.CreateTeacher(c.Request.Context(), req.Email, req.FullName)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.UserMutationResponse{
		Message: "Teacher account created successfully",
		User:    teacher,
	})
}

// UpdateUserStatus toggles a user between ACTIVE and INACTIVE
func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	userID := c.Param("id")

	user, err := h.userAdminUsecase.ToggleUserStatus(c.Request.Context(), userID)
	if err != nil {
		HandleUseCaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserMutationResponse{
		Message: "User status updated successfully",
		User:    user,
	})
}

func usersResponse(page usecasecontract.Page[usecasecontract.UserListItem]) dto.UsersResponse {
	return dto.UsersResponse{
		Users: page.Items,
		Total: page.Total,
		Page:  page.Page,
		Pages: page.Pages,
	}
}
