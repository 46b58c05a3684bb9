package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createClientRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	IsActive *bool  `json:"is_active"` // defaults to true when omitted
}

// updateClientRequest is a partial update: every field is a pointer so an
// omitted field can be told apart from an explicit zero value. Omitted
// fields are left untouched on the stored record.
type updateClientRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Company  *string `json:"company"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

// --- Response types ---

// clientResponse is the external representation of a client record. It is
// intentionally separate from the domain type so the JSON contract is not
// coupled to internal changes.
type clientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"is_active"`
}
