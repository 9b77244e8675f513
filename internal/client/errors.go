package client

import "fmt"

// NetworkError means the request could not be sent or timed out.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError means the response body did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode error: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response from the data service.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string { return fmt.Sprintf("server error: status %d", e.Status) }
