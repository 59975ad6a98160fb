package models

// Student represents a student record as exchanged with the backend.
// IDNumber carries the canonical "XXXX-XXXX" form once formatted.
type Student struct {
	IDNumber    string `json:"id_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	YearLevel   string `json:"year_level"`
	Gender      string `json:"gender"`
	ProgramCode string `json:"program_code"`
	Picture     string `json:"picture,omitempty"` // URL of the stored profile picture, if any
}
