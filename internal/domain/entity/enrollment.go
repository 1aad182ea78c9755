package entity

import "time"

// Enrollment ties a student to a course. The student+course pair is unique.
// CompletedLessons must never contain the same lesson twice; Progress is
// derived from it on every write and never trusted from callers.
type Enrollment struct {
	ID               string            `bson:"_id,omitempty" json:"id"`
	StudentID        string            `bson:"student_id" json:"studentId"`
	CourseID         string            `bson:"course_id" json:"courseId"`
	EnrollmentDate   time.Time         `bson:"enrollment_date" json:"enrollmentDate"`
	CompletedLessons []CompletedLesson `bson:"completed_lessons" json:"completedLessons"`
	Progress         int               `bson:"progress" json:"progress"`
	CreatedAt        time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time         `bson:"updated_at" json:"updatedAt"`
}

type CompletedLesson struct {
	LessonID    string    `bson:"lesson_id" json:"lessonId"`
	CompletedAt time.Time `bson:"completed_at" json:"completedAt"`
}

// StudentEnrollmentRow is an enrollment joined to its course title, as
// returned by the student-detail aggregation.
type StudentEnrollmentRow struct {
	ID               string            `bson:"_id"`
	CourseID         string            `bson:"course_id"`
	CourseTitle      string            `bson:"course_title"`
	EnrollmentDate   time.Time         `bson:"enrollment_date"`
	CompletedLessons []CompletedLesson `bson:"completed_lessons"`
	Progress         int               `bson:"progress"`
}

// EnrollmentCourseRow is the flat join row consumed by the most-enrolled
// aggregation: one row per enrollment with its course and teacher resolved.
type EnrollmentCourseRow struct {
	CourseID    string `bson:"course_id"`
	CourseTitle string `bson:"course_title"`
	TeacherName string `bson:"teacher_name"`
}
