package services

// FailureKind classifies a business rule rejection so handlers can map
// it to an HTTP status without string matching.
type FailureKind int

const (
	FailureNotFound FailureKind = iota
	FailureValidation
	FailureDenied
	FailureLocked
	FailureExpired
)

// Failure is a business outcome, not a system fault. The message is
// the exact user-facing text the API returns.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string { return f.Message }

func failNotFound(msg string) *Failure   { return &Failure{Kind: FailureNotFound, Message: msg} }
func failValidation(msg string) *Failure { return &Failure{Kind: FailureValidation, Message: msg} }
func failDenied(msg string) *Failure     { return &Failure{Kind: FailureDenied, Message: msg} }
func failLocked(msg string) *Failure     { return &Failure{Kind: FailureLocked, Message: msg} }
func failExpired(msg string) *Failure    { return &Failure{Kind: FailureExpired, Message: msg} }

// AsFailure unwraps err into a *Failure when it is one.
func AsFailure(err error) (*Failure, bool) {
	f, ok := err.(*Failure)
	return f, ok
}
