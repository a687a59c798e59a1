package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// EmptyQueryErr represents a combined query with no populated signal.
// It is rejected before any store or encoder call and is distinguishable
// from a search that legitimately matched nothing.
type EmptyQueryErr struct {
	domainErr
}

// NewEmptyQueryErr creates a new EmptyQueryErr with the given message.
func NewEmptyQueryErr(message string) *EmptyQueryErr {
	return &EmptyQueryErr{
		domainErr: domainErr{message: message},
	}
}

// DimensionErr represents an embedding whose width does not match the
// store's configured vector column. Fatal for the operation that produced it.
type DimensionErr struct {
	domainErr
}

// NewDimensionErr creates a new DimensionErr with the given message.
func NewDimensionErr(message string) *DimensionErr {
	return &DimensionErr{
		domainErr: domainErr{message: message},
	}
}
