package loader

import (
	"fmt"
)

type ErrorKind string

const (
	// KindStatus means the resource answered with a non-success status.
	KindStatus ErrorKind = "status"
	// KindParse means the body is not a json array or object of records.
	KindParse ErrorKind = "parse"
	// KindNetwork means the resource could not be reached or read.
	KindNetwork ErrorKind = "network"
)

// LoadError is the only error LoadAll returns. Callers show one fixed message
// for every kind; the details are for logs.
type LoadError struct {
	Resource   Resource
	Kind       ErrorKind
	StatusCode int // set for KindStatus
	Err        error
}

func (e *LoadError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("load %s: status %d: %v", e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("load %s: %s: %v", e.Resource, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}
