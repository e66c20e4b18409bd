package models

import "time"

// ProcessRequest is the body sent to the remote file-processing endpoint.
type ProcessRequest struct {
	FileData string `json:"fileData"`
	Filename string `json:"filename"`
}

// ProcessResponse is the body returned by the remote file-processing endpoint.
type ProcessResponse struct {
	Success       bool      `json:"success"`
	Products      []Product `json:"products,omitempty"`
	Categories    []string  `json:"categories,omitempty"`
	Message       string    `json:"message,omitempty"`
	TotalProducts *int      `json:"total_products,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// OutcomeKind distinguishes the three results of a submission.
type OutcomeKind string

const (
	OutcomeSuccess          OutcomeKind = "success"
	OutcomeProcessingFailed OutcomeKind = "processing_failed"
	OutcomeTransportError   OutcomeKind = "transport_error"
)

// UploadOutcome is the single message shown after a submission.
type UploadOutcome struct {
	Kind          OutcomeKind `json:"kind"`
	Message       string      `json:"message"`
	TotalProducts int         `json:"total_products,omitempty"`
	Categories    []string    `json:"categories,omitempty"`
	At            time.Time   `json:"at"`
}

// UploadStatus is the admin panel view of the current upload cycle.
type UploadStatus struct {
	Filename string         `json:"filename,omitempty"`
	Size     int            `json:"size,omitempty"`
	InFlight bool           `json:"in_flight"`
	Outcome  *UploadOutcome `json:"outcome,omitempty"`
}
