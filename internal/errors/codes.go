package errors

// Code represents an error code
type Code string

// Error codes used across the service. The scrape/render/registry paths map
// onto these as follows: a missing record is NOT_FOUND, an unreachable or
// malformed upstream is UNAVAILABLE, a dangling class/school reference in a
// registry payload is FAILED_PRECONDITION, a second extended-info create for
// the same spell is ALREADY_EXISTS, and a failed table render is RENDER_FAILED.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeRenderFailed       Code = "RENDER_FAILED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
