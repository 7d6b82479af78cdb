package services

// Every operation surfaces failures through this explicit taxonomy so handlers
// can map each case to a status code without inspecting driver errors.

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ConflictError signals a unique-constraint violation on (name, lat, lng).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

type UnsupportedMediaError struct {
	Reason string
}

func (e *UnsupportedMediaError) Error() string { return e.Reason }

type QuotaExceededError struct {
	Reason string
}

func (e *QuotaExceededError) Error() string { return e.Reason }

type PayloadTooLargeError struct {
	Reason string
}

func (e *PayloadTooLargeError) Error() string { return e.Reason }

type ForbiddenPathError struct{}

func (e *ForbiddenPathError) Error() string { return "Access denied" }

// duplicateLandmarkMessage is the user-facing 409 message, kept verbatim from
// the product copy.
const duplicateLandmarkMessage = "Địa điểm đã tồn tại (trùng name + lat + lng)"

func newLandmarkConflict() *ConflictError {
	return &ConflictError{Message: duplicateLandmarkMessage}
}
