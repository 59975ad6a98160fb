package validation

import (
	"regexp"
	"strings"

	"github.com/ssisdev/sisctl/internal/app/models"
)

var (
	lettersOnly    = regexp.MustCompile(`^[A-Za-z]+$`)
	programNameSet = regexp.MustCompile(`^[A-Za-z\s\-,()]+$`)
)

// ProgramInput is the raw form input for an academic program.
type ProgramInput struct {
	ProgramCode string
	ProgramName string
	CollegeCode string
}

// ProgramValidator checks and normalizes raw program form input.
type ProgramValidator struct{}

// ValidateProgramCode checks the 2-10 character, letters-only rule.
func (ProgramValidator) ValidateProgramCode(code string) Result {
	if strings.TrimSpace(code) == "" {
		return invalid("Program code is required")
	}

	clean := strings.TrimSpace(code)

	if len(clean) < 2 || len(clean) > 10 {
		return invalid("Program code must be between 2 and 10 characters")
	}
	if !lettersOnly.MatchString(clean) {
		return invalid("Program code can only contain letters")
	}
	return valid()
}

// ValidateProgramName checks the 3-100 character bound and the allowed
// character set, which for programs also admits parentheses.
func (ProgramValidator) ValidateProgramName(name string) Result {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return invalid("Program name is required")
	}
	if len(clean) < 3 || len(clean) > 100 {
		return invalid("Program name must be between 3 and 100 characters")
	}
	if !programNameSet.MatchString(clean) {
		return invalid("Program name can only contain letters, spaces, commas, parenthesis and hyphens")
	}
	return valid()
}

// ValidateAndFormat validates code then name, stopping at the first
// failure. The college code reference passes through with a plain trim.
func (v ProgramValidator) ValidateAndFormat(in ProgramInput) Formatted[models.Program] {
	if res := v.ValidateProgramCode(in.ProgramCode); !res.IsValid {
		return reject[models.Program](res)
	}
	if res := v.ValidateProgramName(in.ProgramName); !res.IsValid {
		return reject[models.Program](res)
	}

	return accept(models.Program{
		ProgramCode: FormatCode(in.ProgramCode),
		ProgramName: FormatName(in.ProgramName),
		CollegeCode: strings.TrimSpace(in.CollegeCode),
	})
}
