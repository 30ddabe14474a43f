package errors

import "net/http"

var ErrTaskIDRequired = &Exception{
	Message:    "task id is required",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidTaskID = &Exception{
	Message:    "task id must be a positive integer",
	StatusCode: http.StatusBadRequest,
}
