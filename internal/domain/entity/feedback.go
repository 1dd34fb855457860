package entity

import "time"

// Feedback is a message submitted through the extension's feedback form.
type Feedback struct {
	FeedbackID  string    `json:"feedback_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Timestamp   time.Time `json:"timestamp"` // Client-reported submission time.
	CreatedAt   time.Time `json:"created_at"`
}

// FailedExtraction records a product page the extension could not parse.
type FailedExtraction struct {
	ExtractionID string    `json:"extraction_id"`
	URL          string    `json:"url"`
	Domain       string    `json:"domain"` // Lowercased host without a leading "www.".
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}
