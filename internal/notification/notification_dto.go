package notification

// Message is a send request handed to the dispatcher.
type Message struct {
	To            string
	Subject       string
	Body          string
	Kind          string
	RecipientKind string
	SentBy        string
}

// SendResult reports the outcome of one attempt. It is a value, not an
// error: a failed notification never fails the triggering request.
type SendResult struct {
	Sent      bool   `json:"sent"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type EmailLogResponse struct {
	ID                string `json:"id"`
	Recipient         string `json:"recipient"`
	RecipientKind     string `json:"recipient_kind,omitempty"`
	Subject           string `json:"subject"`
	Kind              string `json:"kind,omitempty"`
	Status            string `json:"status"`
	ErrorText         string `json:"error_text,omitempty"`
	SentBy            string `json:"sent_by,omitempty"`
	ProviderMessageID string `json:"provider_message_id,omitempty"`
	CreatedAt         string `json:"created_at"`
}
