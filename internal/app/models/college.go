package models

// College represents a college that owns one or more programs
type College struct {
	CollegeCode string `json:"college_code"`
	CollegeName string `json:"college_name"`
}
