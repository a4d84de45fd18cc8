package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentinfo/internal/app/models/dto"
	"github.com/yigit/studentinfo/internal/app/services"
	"github.com/yigit/studentinfo/internal/middleware"
)

// StudentController handles student record endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents lists student records, optionally filtered
// @Summary List student records
// @Description Retrieves all student records. When both searchBy and query are given, only records whose named field contains the query (case-insensitive) are returned.
// @Tags students
// @Produce json
// @Param searchBy query string false "Record field to match (name, rollNo, universityId, bloodGroup, address, year, department)"
// @Param query query string false "Substring to search for"
// @Success 200 {object} dto.StudentListResponse "Student records"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	searchBy := ctx.Query("searchBy")
	query := ctx.Query("query")

	students := c.studentService.ListStudents(ctx, searchBy, query)

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Students: students,
	})
}

// CreateStudent adds a student record
// @Summary Add a student record
// @Description Validates the payload, assigns an id and appends the record to the collection
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.CreateStudentResponse "Student added"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateStudentResponse{
		Message: "Student added",
		Student: student,
	})
}
