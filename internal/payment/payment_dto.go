package payment

// EmployerIntake carries the employer registration fields. They ride
// along on order creation (denormalized onto the Payment row) and again
// on the verification call.
type EmployerIntake struct {
	Name           string `json:"name" binding:"required"`
	CompanyName    string `json:"company_name" binding:"required"`
	BusinessEmail  string `json:"business_email" binding:"required,email"`
	BusinessNumber string `json:"business_number" binding:"required,inmobile"`
	Location       string `json:"location" binding:"required"`
	Designation    string `json:"designation" binding:"required"`
	CompanySize    int    `json:"company_size" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	EmployerIntake
}

type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

type RegisterEmployerRequest struct {
	EmployerIntake
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type RegisterEmployerResponse struct {
	EmployerID string `json:"employerId"`
	PaymentID  string `json:"paymentId"`
	EmailSent  bool   `json:"emailSent"`
}

type ManualPaymentRequest struct {
	EmployerIntake
}

type ManualPaymentResponse struct {
	ReferenceID string `json:"referenceId"`
	Status      string `json:"status"`
}

// WebhookEvent mirrors the provider's event envelope; only the fields
// the reconciliation path reads are mapped.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Method  string `json:"method"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

type PaymentResponse struct {
	ID                string `json:"id"`
	OrderID           string `json:"order_id"`
	ProviderPaymentID string `json:"provider_payment_id,omitempty"`
	Amount            int64  `json:"amount"`
	Currency          string `json:"currency"`
	Status            string `json:"status"`
	Method            string `json:"method,omitempty"`
	EmployerID        string `json:"employer_id,omitempty"`
	CompanyName       string `json:"company_name,omitempty"`
	BusinessEmail     string `json:"business_email,omitempty"`
	PaidAt            string `json:"paid_at,omitempty"`
	CreatedAt         string `json:"created_at"`
}
