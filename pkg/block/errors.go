package block

// Error is a validation error code. The numeric values are part of the
// library's binary interface and must not be reordered.
type Error int

// Validation error codes. Success is a nil error, not a code.
const (
	// ErrInvalidParam signals malformed API usage: a nil block or
	// missing/invalid required flags.
	ErrInvalidParam Error = 1
	// ErrInvalidSize signals a StructSize smaller than the expected
	// descriptor size (stale or truncated descriptor).
	ErrInvalidSize Error = 2
	// ErrInvalidABI signals an ABIVersion that does not match the
	// compiled library.
	ErrInvalidABI Error = 3
	// ErrInvalidInput signals an input buffer with the wrong
	// format/layout, zero dimensions, or missing storage.
	ErrInvalidInput Error = 4
	// ErrInvalidOutput signals an output buffer with the wrong
	// format/layout, zero dimensions, or missing storage.
	ErrInvalidOutput Error = 5
	// ErrInvalidBlock signals a block-level constraint violation:
	// input/output shape mismatch or an unknown kind.
	ErrInvalidBlock Error = 6
)

// Error implements the error interface. Unknown codes map to a generic
// "unknown error" string.
func (e Error) Error() string {
	switch e {
	case 0:
		return "no error"
	case ErrInvalidParam:
		return "invalid parameter"
	case ErrInvalidSize:
		return "invalid size"
	case ErrInvalidABI:
		return "invalid ABI version"
	case ErrInvalidInput:
		return "invalid input buffer"
	case ErrInvalidOutput:
		return "invalid output buffer"
	case ErrInvalidBlock:
		return "invalid block constraints"
	default:
		return "unknown error"
	}
}
