package shared

import "errors"

// Kind classifies a domain error so the transport layer can map it to a
// status code without inspecting messages.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindNotFound           Kind = "not_found"
	KindPreconditionFailed Kind = "precondition_failed"
	KindConflict           Kind = "conflict"
	KindInternal           Kind = "internal"
)

// DomainError is the single error shape the ledger surfaces to callers.
type DomainError struct {
	Kind    Kind   `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string { return e.Message }

// Is lets sentinel DomainErrors match through errors.Is by code.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return e.Code == de.Code
}

func NewValidation(code, message string) *DomainError {
	return &DomainError{Kind: KindValidation, Code: code, Message: message}
}

func NewNotFound(code, message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

func NewPreconditionFailed(code, message string) *DomainError {
	return &DomainError{Kind: KindPreconditionFailed, Code: code, Message: message}
}

func NewConflict(code, message string) *DomainError {
	return &DomainError{Kind: KindConflict, Code: code, Message: message}
}

// ErrInternal hides store-level failures from callers; the original error
// is logged by the surrounding adapter, never returned.
var ErrInternal = &DomainError{Kind: KindInternal, Code: "Internal", Message: "internal error"}

// KindOf extracts the Kind from err, or KindInternal for anything that is
// not a DomainError.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
