package response

// Resp is the JSON body of every /api/v1 answer. Data and Errors are left
// out when empty; Errors carries the remote field errors of a rejected form.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
