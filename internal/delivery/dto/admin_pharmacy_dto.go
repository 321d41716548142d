package dto

type CreateAdminPharmacyRequest struct {
	FirstName       string   `json:"firstName" validate:"required,max=50"`
	LastName        string   `json:"lastName" validate:"required,max=50"`
	Email           string   `json:"email" validate:"required,email,max=100"`
	PharmacyID      *int64   `json:"pharmacyId"`
	PlainPassword   string   `json:"plainPassword" validate:"required,min=6,eqfield=ConfirmPassword"`
	ConfirmPassword string   `json:"password" validate:"required"`
	Roles           []string `json:"roles"`
}

type UpdateAdminPharmacyRequest struct {
	FirstName       string   `json:"firstName" validate:"required,max=50"`
	LastName        string   `json:"lastName" validate:"required,max=50"`
	Email           string   `json:"email" validate:"required,email,max=100"`
	PharmacyID      *int64   `json:"pharmacyId"`
	PlainPassword   string   `json:"plainPassword" validate:"omitempty,min=6,eqfield=ConfirmPassword"`
	ConfirmPassword string   `json:"password"`
	Roles           []string `json:"roles"`
}

type UpdateAdminPharmacyBulkItem struct {
	ID int64 `json:"id" validate:"required"`
	UpdateAdminPharmacyRequest
}

type AdminPharmacyResponse struct {
	ID        int64             `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	Roles     []string          `json:"roles"`
	Pharmacy  *PharmacyResponse `json:"pharmacy,omitempty"`
}
