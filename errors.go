package magidict

import "fmt"

// Error codes.  Callers branch on the Code field (or IsCode) rather
// than on messages.
const (
	ErrProtected     = "ERR_PROTECTED_MUTATION"
	ErrKeyNotFound   = "ERR_KEY_NOT_FOUND"
	ErrAttrImmutable = "ERR_ATTR_IMMUTABLE"
	ErrType          = "ERR_TYPE"
	ErrDecode        = "ERR_DECODE"
	ErrCodec         = "ERR_CODEC"
)

// DictError is the canonical error type for this package.  Every error
// returned by a Dict operation or boundary adapter is a *DictError.
type DictError struct {
	Code string
	Msg  string
}

func (e *DictError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

// Is reports code equality, so errors.Is(err, &DictError{Code: ErrProtected})
// matches regardless of message.
func (e *DictError) Is(target error) bool {
	t, ok := target.(*DictError)
	return ok && t.Code == e.Code
}

func newErr(code, msg string) *DictError {
	return &DictError{Code: code, Msg: msg}
}

// IsCode reports whether err is a *DictError carrying the given code.
func IsCode(err error, code string) bool {
	e, ok := err.(*DictError)
	return ok && e.Code == code
}

func errProtected() *DictError {
	return newErr(ErrProtected, "dict stands for a null or missing key and cannot be modified")
}

func errKeyNotFound(key any) *DictError {
	return newErr(ErrKeyNotFound, fmt.Sprintf("key %v not found", key))
}
