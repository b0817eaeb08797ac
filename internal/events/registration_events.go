package events

import "time"

const (
	EmployeeRegisteredTopic = "portal.employee.registration.v1"
	EmployerRegisteredTopic = "portal.employer.registration.v1"
)

type EmployeeRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EmployerRegisteredEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployerID    string    `json:"employer_id"`
	PaymentID     string    `json:"payment_id"`
	BusinessEmail string    `json:"business_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}
