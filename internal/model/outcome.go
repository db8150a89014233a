package model

// ErrorKind classifies a failed fetch.
type ErrorKind string

// Failure kinds.
const (
	KindNetwork        ErrorKind = "network"
	KindDecode         ErrorKind = "decode"
	KindProvider       ErrorKind = "provider"
	KindInvalidRequest ErrorKind = "invalid_request"
	KindCanceled       ErrorKind = "canceled"
)

// Failure describes why a fetch produced no result.
// StatusCode is set only for KindProvider.
type Failure struct {
	Kind       ErrorKind `json:"kind"`
	StatusCode int       `json:"statusCode,omitempty"`
	Message    string    `json:"message"`
}

// FetchOutcome is either a result or a failure, never both.
type FetchOutcome struct {
	Result  *WeatherResult
	Failure *Failure
}

// Success wraps a weather result into an outcome.
func Success(res WeatherResult) FetchOutcome {
	return FetchOutcome{Result: &res}
}

// Fail creates a failed outcome.
func Fail(kind ErrorKind, statusCode int, message string) FetchOutcome {
	return FetchOutcome{Failure: &Failure{Kind: kind, StatusCode: statusCode, Message: message}}
}

// OK reports whether the outcome carries a result.
func (o FetchOutcome) OK() bool {
	return o.Result != nil && o.Failure == nil
}
