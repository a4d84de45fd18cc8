package dto

import "github.com/yigit/studentinfo/internal/app/models"

// CreateStudentRequest represents the payload for adding a student record
type CreateStudentRequest struct {
	Name         string `json:"name" binding:"required" example:"Ada Lovelace"`
	RollNo       string `json:"rollNo" binding:"required" example:"42"`
	UniversityID string `json:"universityId" binding:"required" example:"2016331042"`
	BloodGroup   string `json:"bloodGroup,omitempty" example:"B+"`
	Address      string `json:"address,omitempty" example:"Sylhet"`
	Year         string `json:"year" binding:"required" example:"4th"`
	Department   string `json:"department" binding:"required" example:"Computer Science"`
}

// StudentListResponse wraps the student collection returned by list and search
type StudentListResponse struct {
	Students []models.Student `json:"students"`
}

// CreateStudentResponse confirms a stored record, echoing it back with its id
type CreateStudentResponse struct {
	Message string         `json:"message" example:"Student added"`
	Student models.Student `json:"student"`
}
