package domain

import "time"

// Document is a file shared with a worker (contract, induction pack).
// Sharing one triggers a notification to the recipient.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UserID     string    `json:"user_id"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateDocumentInput struct {
	Name       string
	URL        string
	UserID     string
	UploadedBy string
}
