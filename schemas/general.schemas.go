package schemas

// Result statuses. Succeeded and Failed are produced by actions; Errored is
// the boundary's rendering of validation errors and faults.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusErrored   = "errored"
)

// Result is the uniform envelope every action returns.
type Result struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Succeeded builds a successful envelope.
func Succeeded(message string) Result {
	return Result{Status: StatusSucceeded, Message: message}
}

// SucceededData builds a successful envelope carrying data.
func SucceededData(message string, data interface{}) Result {
	return Result{Status: StatusSucceeded, Message: message, Data: data}
}

// Failed builds an expected-business-outcome envelope.
func Failed(message string) Result {
	return Result{Status: StatusFailed, Message: message}
}
