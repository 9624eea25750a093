package models

// DeliveryStatus is the lifecycle state of a challan email as reported by
// the portal backend.
type DeliveryStatus string

const (
	// StatusSent means the email left the portal's outbox.
	StatusSent DeliveryStatus = "sent"

	// StatusDelivered means the receiving mail server accepted the email.
	StatusDelivered DeliveryStatus = "delivered"

	// StatusPending means the challan is generated but the email has not
	// been dispatched yet.
	StatusPending DeliveryStatus = "pending"

	// StatusFailed means dispatch was attempted and rejected.
	StatusFailed DeliveryStatus = "failed"
)

// ChallanEntry is one row of the delivery-status listing. The backend owns
// the shape; the client renders it and keys local operations by Email.
type ChallanEntry struct {
	// StudentName is the full name of the student the challan was
	// generated for.
	StudentName string `json:"student_name"`

	// Email is the student's address the challan was sent to. It is the
	// identifier used by the delete endpoint.
	Email string `json:"email"`

	// Status is the current delivery state of the challan email.
	Status DeliveryStatus `json:"status"`

	// CreatedAt is the backend-formatted creation timestamp. Passed
	// through for display without local parsing.
	CreatedAt string `json:"created_at"`
}

// ManualEntry is the payload of the single-record submission form.
type ManualEntry struct {
	// StudentName is the student's full name. Required.
	StudentName string `json:"student_name"`

	// RollNumber is the university roll number, e.g. "2024001". Required.
	RollNumber string `json:"roll_number"`

	// ClassName is the class/section label, e.g. "BSCS-6A". Required.
	ClassName string `json:"class_name"`

	// Email is the student's address the challan will be mailed to.
	// Required.
	Email string `json:"email"`

	// ExpiryDate is the challan due date in YYYY-MM-DD form. Optional;
	// the service substitutes a fallback when blank.
	ExpiryDate string `json:"expiry_date"`
}
