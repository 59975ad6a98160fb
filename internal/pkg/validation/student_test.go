package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssisdev/sisctl/internal/pkg/validation"
)

// pngBytes builds a blob that sniffs as image/png at the given size.
func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
	return data
}

func validStudentInput() validation.StudentInput {
	return validation.StudentInput{
		IDNumber:    "12345678",
		FirstName:   "juan",
		LastName:    "dela cruz",
		YearLevel:   "1",
		Gender:      "M",
		ProgramCode: "bscs",
	}
}

func TestValidateIDNumber(t *testing.T) {
	var v validation.StudentValidator

	t.Run("accepts 8 digits in any separator style", func(t *testing.T) {
		for _, id := range []string{"12345678", "1234-5678", "1234 5678"} {
			res := v.ValidateIDNumber(id)
			assert.True(t, res.IsValid, "input %q", id)
			assert.Empty(t, res.Error)
		}
	})

	t.Run("rejects empty", func(t *testing.T) {
		res := v.ValidateIDNumber("   ")
		assert.False(t, res.IsValid)
		assert.Equal(t, "ID number is required", res.Error)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		res := v.ValidateIDNumber("1234-567")
		assert.False(t, res.IsValid)
		assert.Equal(t, "ID number must be exactly 8 digits (format: XXXX-XXXX)", res.Error)
	})

	t.Run("rejects non-digits", func(t *testing.T) {
		res := v.ValidateIDNumber("1234abcd")
		assert.False(t, res.IsValid)
		assert.Equal(t, "ID number can only contain digits", res.Error)
	})
}

func TestValidateNames(t *testing.T) {
	var v validation.StudentValidator

	t.Run("first name allows hyphens", func(t *testing.T) {
		assert.True(t, v.ValidateFirstName("Anne-Marie").IsValid)
	})

	t.Run("last name rejects hyphens", func(t *testing.T) {
		res := v.ValidateLastName("Smith-Jones")
		assert.False(t, res.IsValid)
		assert.Equal(t, "Last name can only contain letters and spaces", res.Error)
	})

	t.Run("length bounds", func(t *testing.T) {
		res := v.ValidateFirstName("J")
		assert.Equal(t, "First name must be between 2 and 50 characters", res.Error)

		res = v.ValidateLastName("X")
		assert.Equal(t, "Last name must be between 2 and 50 characters", res.Error)
	})

	t.Run("required", func(t *testing.T) {
		assert.Equal(t, "First name is required", v.ValidateFirstName("  ").Error)
		assert.Equal(t, "Last name is required", v.ValidateLastName("").Error)
	})
}

func TestValidateProfilePicture(t *testing.T) {
	var v validation.StudentValidator

	t.Run("absent picture is valid", func(t *testing.T) {
		assert.True(t, v.ValidateProfilePicture(nil).IsValid)
	})

	t.Run("accepts a small png", func(t *testing.T) {
		pic := validation.NewPicture("avatar.png", pngBytes(1024))
		assert.True(t, v.ValidateProfilePicture(pic).IsValid)
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		pic := validation.NewPicture("notes.txt", []byte("definitely not an image"))
		res := v.ValidateProfilePicture(pic)
		assert.False(t, res.IsValid)
		assert.Equal(t, "Only image files (JPG, PNG, GIF, WEBP) are allowed", res.Error)
	})

	t.Run("rejects oversized image even with an allowed type", func(t *testing.T) {
		pic := validation.NewPicture("huge.png", pngBytes(6*1024*1024))
		require.Equal(t, "image/png", pic.MIME)

		res := v.ValidateProfilePicture(pic)
		assert.False(t, res.IsValid)
		assert.Equal(t, "Image size must not exceed 5MB", res.Error)
	})
}

func TestValidateAndFormatStudent(t *testing.T) {
	var v validation.StudentValidator

	t.Run("formats every field on success", func(t *testing.T) {
		res := v.ValidateAndFormat(validStudentInput())
		require.True(t, res.IsValid)
		require.NotNil(t, res.Data)
		assert.Empty(t, res.Error)

		assert.Equal(t, "1234-5678", res.Data.IDNumber)
		assert.Equal(t, "Juan", res.Data.FirstName)
		assert.Equal(t, "Dela Cruz", res.Data.LastName)
		assert.Equal(t, "1", res.Data.YearLevel)
		assert.Equal(t, "M", res.Data.Gender)
		assert.Equal(t, "bscs", res.Data.ProgramCode)
	})

	t.Run("fails fast on the first invalid field", func(t *testing.T) {
		in := validStudentInput()
		in.IDNumber = "12"
		in.FirstName = "" // also invalid, must never surface

		res := v.ValidateAndFormat(in)
		require.False(t, res.IsValid)
		assert.Nil(t, res.Data)
		assert.Equal(t, "ID number must be exactly 8 digits (format: XXXX-XXXX)", res.Error)
	})

	t.Run("field order is ID, first name, last name, picture", func(t *testing.T) {
		in := validStudentInput()
		in.LastName = "123"
		in.Picture = validation.NewPicture("x.txt", []byte("nope"))

		res := v.ValidateAndFormat(in)
		assert.Equal(t, "Last name can only contain letters and spaces", res.Error)
	})

	t.Run("picture failure blocks formatting", func(t *testing.T) {
		in := validStudentInput()
		in.Picture = validation.NewPicture("big.png", pngBytes(6*1024*1024))

		res := v.ValidateAndFormat(in)
		require.False(t, res.IsValid)
		assert.Nil(t, res.Data)
		assert.Equal(t, "Image size must not exceed 5MB", res.Error)
	})
}
