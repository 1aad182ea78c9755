package dto

// CreateTeacherRequest provisions a teacher account. The password is
// generated server side, never supplied.
type CreateTeacherRequest struct {
	Email    string `json:"email" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

// EnrollRequest enrolls a student in a course.
type EnrollRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	CourseID  string `json:"courseId" binding:"required"`
}

// AddToCartRequest puts a course in a student's cart.
type AddToCartRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	CourseID  string `json:"courseId" binding:"required"`
}

// CreateCategoryRequest creates a course category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
