package models

// Program represents an academic program offered by a college
type Program struct {
	ProgramCode string `json:"program_code"`
	ProgramName string `json:"program_name"`
	CollegeCode string `json:"college_code"`
}
