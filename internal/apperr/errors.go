package apperr

// InvalidInputError signals that the caller supplied input outside an
// operation's contract, e.g. a missing rater name or an unknown display slot.
type InvalidInputError struct {
	Message string
	Err     error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func NewInvalidInput(msg string) *InvalidInputError {
	return &InvalidInputError{Message: msg}
}

func NewInvalidInputWrap(msg string, err error) *InvalidInputError {
	return &InvalidInputError{Message: msg, Err: err}
}

// InvalidStateError signals an operation attempted outside its lifecycle
// phase, e.g. recording a judgment on a completed session. Session state is
// left unchanged.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

func NewInvalidState(msg string) *InvalidStateError {
	return &InvalidStateError{Message: msg}
}

// ExportError signals that the result artifact could not be serialized or
// written. The judgment log stays in memory so the export can be retried.
type ExportError struct {
	Message string
	Err     error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

func NewExport(msg string) *ExportError {
	return &ExportError{Message: msg}
}

func NewExportWrap(msg string, err error) *ExportError {
	return &ExportError{Message: msg, Err: err}
}
