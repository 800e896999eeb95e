package model

// Error codes carried in the "error" field of a failure envelope.
const (
    CodeUnauthorized      = "unauthorized"
    CodeForbidden         = "forbidden"
    CodeInvalidIdentifier = "invalid_identifier"
    CodeInvalidBody       = "invalid_body"
    CodeNotFound          = "not_found"
    CodeUpstreamFailure   = "upstream_failure"
)

// DataResponse wraps every successful JSON response.
type DataResponse struct {
    Data interface{} `json:"data"`
}

// ErrorResponse wraps every failed JSON response.
type ErrorResponse struct {
    Error   string `json:"error"`
    Message string `json:"message"`
}
