package models

// Enquiry is a contact-form submission with a triage lifecycle.
// Completed and CompletedAt always track Status == complete.
type Enquiry struct {
	ID          string `json:"id"`                     // Unique enquiry identifier
	Name        string `json:"name"`                   // Sender name
	Email       string `json:"email"`                  // Sender email
	Phone       string `json:"phone"`                  // Sender phone
	Message     string `json:"message"`                // Enquiry text
	Status      Status `json:"status"`                 // new, in_progress or complete
	Completed   bool   `json:"completed"`              // Legacy flag, mirrors Status == complete
	CompletedAt string `json:"completed_at,omitempty"` // Timestamp when marked complete
	CreatedAt   string `json:"created_at"`             // Timestamp when submitted
	UpdatedAt   string `json:"updated_at"`             // Timestamp of the last update

	Seq int64 `json:"-"` // Insertion sequence, newest-first listing tie-break
}
