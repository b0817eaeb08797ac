package employee

type RegisterEmployeeRequest struct {
	Name           string `json:"name" binding:"required"`
	ContactNo      string `json:"contact_no" binding:"required,inmobile"`
	AlternateNo    string `json:"alternate_no" binding:"omitempty,inmobile"`
	Email          string `json:"email" binding:"required,email"`
	JoiningCompany string `json:"joining_company" binding:"required"`
	JoiningDate    string `json:"joining_date" binding:"required"`
	Position       string `json:"position" binding:"required"`
}

type RegisterEmployeeResponse struct {
	EmployeeID string `json:"employeeId"`
	EmailSent  bool   `json:"emailSent"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ContactNo      string `json:"contact_no"`
	AlternateNo    string `json:"alternate_no,omitempty"`
	Email          string `json:"email"`
	JoiningCompany string `json:"joining_company"`
	JoiningDate    string `json:"joining_date"`
	Position       string `json:"position"`
	Status         string `json:"status"`
}
