package models

// CollegeEnrollment is one row of the students-per-college breakdown
type CollegeEnrollment struct {
	CollegeCode  string `json:"college_code"`
	CollegeName  string `json:"college_name"`
	StudentCount int64  `json:"student_count"`
}

// ProgramEnrollment is one row of the per-program enrollment counts
type ProgramEnrollment struct {
	ProgramCode  string `json:"program_code"`
	ProgramName  string `json:"program_name"`
	StudentCount int64  `json:"student_count"`
}

// CollegeStats aggregates program and student counts for one college
type CollegeStats struct {
	CollegeCode  string `json:"college_code"`
	CollegeName  string `json:"college_name"`
	ProgramCount int64  `json:"program_count"`
	StudentCount int64  `json:"student_count"`
}

// DashboardTotals holds the three headline counts
type DashboardTotals struct {
	TotalStudents int64 `json:"total_students"`
	TotalPrograms int64 `json:"total_programs"`
	TotalColleges int64 `json:"total_colleges"`
}

// DashboardSummary is the combined payload of GET /dashboard/summary
type DashboardSummary struct {
	TotalStudents      int64               `json:"total_students"`
	TotalPrograms      int64               `json:"total_programs"`
	TotalColleges      int64               `json:"total_colleges"`
	StudentsPerCollege []CollegeEnrollment `json:"students_per_college"`
	TopPrograms        []ProgramEnrollment `json:"top_programs"`
	CollegeStats       []CollegeStats      `json:"college_stats"`
}
