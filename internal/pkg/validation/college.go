package validation

import (
	"regexp"
	"strings"

	"github.com/ssisdev/sisctl/internal/app/models"
)

var collegeNameSet = regexp.MustCompile(`^[A-Za-z\s\-,]+$`)

// CollegeInput is the raw form input for a college.
type CollegeInput struct {
	CollegeCode string
	CollegeName string
}

// CollegeValidator checks and normalizes raw college form input.
type CollegeValidator struct{}

// ValidateCollegeCode checks the 2-10 character, letters-only rule.
func (CollegeValidator) ValidateCollegeCode(code string) Result {
	if strings.TrimSpace(code) == "" {
		return invalid("College code is required")
	}

	clean := strings.TrimSpace(code)

	if len(clean) < 2 || len(clean) > 10 {
		return invalid("College code must be between 2 and 10 characters")
	}
	if !lettersOnly.MatchString(clean) {
		return invalid("College code can only contain letters")
	}
	return valid()
}

// ValidateCollegeName checks the 3-100 character bound and the
// letter/space/hyphen/comma set.
func (CollegeValidator) ValidateCollegeName(name string) Result {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return invalid("College name is required")
	}
	if len(clean) < 3 || len(clean) > 100 {
		return invalid("College name must be between 3 and 100 characters")
	}
	if !collegeNameSet.MatchString(clean) {
		return invalid("College name can only contain letters, spaces, commas, and hyphens")
	}
	return valid()
}

// ValidateAndFormat validates code then name, stopping at the first
// failure.
func (v CollegeValidator) ValidateAndFormat(in CollegeInput) Formatted[models.College] {
	if res := v.ValidateCollegeCode(in.CollegeCode); !res.IsValid {
		return reject[models.College](res)
	}
	if res := v.ValidateCollegeName(in.CollegeName); !res.IsValid {
		return reject[models.College](res)
	}

	return accept(models.College{
		CollegeCode: FormatCode(in.CollegeCode),
		CollegeName: FormatName(in.CollegeName),
	})
}
