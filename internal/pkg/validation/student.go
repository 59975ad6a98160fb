package validation

import (
	"regexp"
	"strings"

	"github.com/ssisdev/sisctl/internal/app/models"
)

var (
	eightDigits  = regexp.MustCompile(`^\d{8}$`)
	firstNameSet = regexp.MustCompile(`^[A-Za-z\s\-]+$`)
	lastNameSet  = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// allowed profile picture media types, as reported by content sniffing
var allowedPictureTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// StudentInput is the raw form input for a student record.
type StudentInput struct {
	IDNumber    string
	FirstName   string
	LastName    string
	YearLevel   string
	Gender      string
	ProgramCode string
	Picture     *Picture
}

// StudentValidator checks and normalizes raw student form input.
// It is stateless; the zero value is ready to use.
type StudentValidator struct{}

// ValidateIDNumber checks that an ID number is exactly 8 digits once
// spaces and hyphens are stripped. The XXXX-XXXX hyphen is cosmetic.
func (StudentValidator) ValidateIDNumber(id string) Result {
	if strings.TrimSpace(id) == "" {
		return invalid("ID number is required")
	}

	cleaned := idSeparators.ReplaceAllString(id, "")

	if len(cleaned) != 8 {
		return invalid("ID number must be exactly 8 digits (format: XXXX-XXXX)")
	}
	if !eightDigits.MatchString(cleaned) {
		return invalid("ID number can only contain digits")
	}
	return valid()
}

// ValidateFirstName checks length bounds and the letter/space/hyphen set.
func (StudentValidator) ValidateFirstName(name string) Result {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return invalid("First name is required")
	}
	if len(clean) < 2 || len(clean) > 50 {
		return invalid("First name must be between 2 and 50 characters")
	}
	if !firstNameSet.MatchString(clean) {
		return invalid("First name can only contain letters, spaces, and hyphens")
	}
	return valid()
}

// ValidateLastName checks length bounds and the letter/space set.
// Hyphens are not allowed here, unlike first names.
func (StudentValidator) ValidateLastName(name string) Result {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return invalid("Last name is required")
	}
	if len(clean) < 2 || len(clean) > 50 {
		return invalid("Last name must be between 2 and 50 characters")
	}
	if !lastNameSet.MatchString(clean) {
		return invalid("Last name can only contain letters and spaces")
	}
	return valid()
}

// ValidateProfilePicture accepts a nil picture. When present, the
// content must sniff as an allowed image type and fit MaxPictureSize.
func (StudentValidator) ValidateProfilePicture(p *Picture) Result {
	if p == nil {
		return valid()
	}
	if !allowedPictureTypes[p.MIME] {
		return invalid("Only image files (JPG, PNG, GIF, WEBP) are allowed")
	}
	if p.Size > MaxPictureSize {
		return invalid("Image size must not exceed 5MB")
	}
	return valid()
}

// ValidateAndFormat runs the field checks in order (ID number, first
// name, last name, picture) and stops at the first failure. Formatting
// happens only after every field has passed.
func (v StudentValidator) ValidateAndFormat(in StudentInput) Formatted[models.Student] {
	if res := v.ValidateIDNumber(in.IDNumber); !res.IsValid {
		return reject[models.Student](res)
	}
	if res := v.ValidateFirstName(in.FirstName); !res.IsValid {
		return reject[models.Student](res)
	}
	if res := v.ValidateLastName(in.LastName); !res.IsValid {
		return reject[models.Student](res)
	}
	if res := v.ValidateProfilePicture(in.Picture); !res.IsValid {
		return reject[models.Student](res)
	}

	return accept(models.Student{
		IDNumber:    FormatIDNumber(in.IDNumber),
		FirstName:   FormatName(in.FirstName),
		LastName:    FormatName(in.LastName),
		YearLevel:   strings.TrimSpace(in.YearLevel),
		Gender:      strings.TrimSpace(in.Gender),
		ProgramCode: strings.TrimSpace(in.ProgramCode),
	})
}
