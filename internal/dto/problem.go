package dto

// ProblemDetails is an RFC-7807-style error body. Type stays "about:blank"
// for plain validation failures; Title names the error kind and Detail the
// specific cause.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}
