package validation

// Result is the outcome of a single field check.
// Error is empty exactly when IsValid is true.
type Result struct {
	IsValid bool
	Error   string
}

func valid() Result { return Result{IsValid: true} }

func invalid(msg string) Result { return Result{Error: msg} }

// Formatted is the outcome of an aggregate validate-and-format call.
// Data is non-nil exactly when IsValid is true.
type Formatted[T any] struct {
	IsValid bool
	Error   string
	Data    *T
}

func reject[T any](field Result) Formatted[T] {
	return Formatted[T]{Error: field.Error}
}

func accept[T any](data T) Formatted[T] {
	return Formatted[T]{IsValid: true, Data: &data}
}
