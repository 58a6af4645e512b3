// Package model holds the domain types shared by repositories, services
// and handlers, together with the request payloads the API accepts.
package model

import "github.com/deppfellow/recipebox/internal/validation"

// MessageResponse is the body of simple acknowledgement responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse acknowledges an insert and carries the new row id.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// UploadResponse carries the public URL of an uploaded file.
type UploadResponse struct {
	URL string `json:"url"`
}

// EmptyPayload is used by routes that accept no input.
type EmptyPayload struct{}

func (p *EmptyPayload) Validate() error {
	return nil
}

// UserIDPathPayload binds the :user_id path segment.
type UserIDPathPayload struct {
	UserID int64 `param:"user_id" validate:"required,gt=0"`
}

func (p *UserIDPathPayload) Validate() error {
	return validation.Struct(p)
}
