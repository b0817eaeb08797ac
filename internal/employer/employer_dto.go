package employer

type EmployerResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CompanyName    string `json:"company_name"`
	BusinessEmail  string `json:"business_email"`
	BusinessNumber string `json:"business_number,omitempty"`
	Location       string `json:"location,omitempty"`
	Designation    string `json:"designation,omitempty"`
	CompanySize    int    `json:"company_size"`
	PaymentID      string `json:"payment_id,omitempty"`
	Status         string `json:"status"`
}
