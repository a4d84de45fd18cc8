package services

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yigit/studentinfo/internal/app/models"
	"github.com/yigit/studentinfo/internal/app/models/dto"
	"github.com/yigit/studentinfo/internal/app/repositories"
	"github.com/yigit/studentinfo/internal/pkg/apperrors"
	"github.com/yigit/studentinfo/internal/pkg/logger"
)

// studentsCreated counts records added since process start, updated here
// in the service layer.
var studentsCreated = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "studentinfo_students_created_total",
		Help: "Total number of student records created",
	},
)

// requiredFields lists the creation fields that must be non-empty, in
// record order.
var requiredFields = []string{"name", "rollNo", "universityId", "year", "department"}

// StudentService handles student record operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// ListStudents returns student records, filtered when both searchBy and
// query are non-empty. The filter is a case-insensitive substring match of
// query against the record field named searchBy; records without a value
// at that field are excluded, and an unknown field name matches nothing.
func (s *StudentService) ListStudents(ctx context.Context, searchBy, query string) []models.Student {
	records := s.studentRepo.Load(ctx)

	if searchBy == "" || query == "" {
		return records
	}

	needle := strings.ToLower(query)
	matches := make([]models.Student, 0, len(records))
	for _, student := range records {
		value, ok := student.FieldValue(searchBy)
		if !ok || value == "" {
			continue
		}
		if strings.Contains(strings.ToLower(value), needle) {
			matches = append(matches, student)
		}
	}

	return matches
}

// CreateStudent validates the request, assigns an id and appends the new
// record to the collection. The returned record is the one persisted.
func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error) {
	if err := validateCreateStudent(req); err != nil {
		return models.Student{}, err
	}

	student := models.Student{
		ID:           time.Now().UnixMilli(),
		Name:         req.Name,
		RollNo:       req.RollNo,
		UniversityID: req.UniversityID,
		BloodGroup:   req.BloodGroup,
		Address:      req.Address,
		Year:         req.Year,
		Department:   req.Department,
	}

	s.studentRepo.Append(ctx, student)

	studentsCreated.Inc()
	logger.Info().
		Int64("id", student.ID).
		Str("name", student.Name).
		Str("universityId", student.UniversityID).
		Msg("Student record added")

	return student, nil
}

// validateCreateStudent checks that every required field carries a value.
// An empty string counts as missing; whitespace is a value.
func validateCreateStudent(req dto.CreateStudentRequest) error {
	values := map[string]string{
		"name":         req.Name,
		"rollNo":       req.RollNo,
		"universityId": req.UniversityID,
		"year":         req.Year,
		"department":   req.Department,
	}

	var missing []string
	for _, field := range requiredFields {
		if values[field] == "" {
			missing = append(missing, field+" is required")
		}
	}

	if len(missing) > 0 {
		return apperrors.NewValidationError(strings.Join(missing, ", "))
	}
	return nil
}
