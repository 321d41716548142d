package dto

import "time"

// PrescriptionRequest carries the issue date as YYYY-MM-DD.
type PrescriptionRequest struct {
	IssueDate string `json:"issueDate" validate:"required,datetime=2006-01-02"`
}

type UpdatePrescriptionBulkItem struct {
	ID int64 `json:"id" validate:"required"`
	PrescriptionRequest
}

type PrescriptionResponse struct {
	ID             int64      `json:"id"`
	IssueDate      string     `json:"issueDate"`
	Picture        string     `json:"picture,omitempty"`
	ImageName      string     `json:"imageName,omitempty"`
	ImageSize      int64      `json:"imageSize,omitempty"`
	ImageUpdatedAt *time.Time `json:"imageUpdatedAt,omitempty"`
}
