package models

// Student defines a single student record as stored in the collection file.
// Field order matches the stored JSON documents. The id is the Unix time in
// milliseconds at creation.
type Student struct {
	ID           int64  `json:"id" example:"1755854400000"`
	Name         string `json:"name" example:"Ada Lovelace"`
	RollNo       string `json:"rollNo" example:"42"`
	UniversityID string `json:"universityId" example:"2016331042"`
	BloodGroup   string `json:"bloodGroup,omitempty" example:"B+"` // Omitted key when never provided
	Address      string `json:"address" example:"Sylhet"`
	Year         string `json:"year" example:"4th"`
	Department   string `json:"department" example:"Computer Science"`
}

// FieldValue returns the value of the string field whose JSON name is field,
// and whether such a field exists. The numeric id is not addressable here.
func (s Student) FieldValue(field string) (string, bool) {
	switch field {
	case "name":
		return s.Name, true
	case "rollNo":
		return s.RollNo, true
	case "universityId":
		return s.UniversityID, true
	case "bloodGroup":
		return s.BloodGroup, true
	case "address":
		return s.Address, true
	case "year":
		return s.Year, true
	case "department":
		return s.Department, true
	default:
		return "", false
	}
}
