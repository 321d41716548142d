package dto

type CreateDeliveryRequest struct {
	FirstName       string   `json:"firstName" validate:"required,max=50"`
	LastName        string   `json:"lastName" validate:"required,max=50"`
	Email           string   `json:"email" validate:"required,email,max=50"`
	PhoneNumber     string   `json:"phoneNumber" validate:"required,max=50"`
	PlainPassword   string   `json:"plainPassword" validate:"required,min=6,eqfield=ConfirmPassword"`
	ConfirmPassword string   `json:"password" validate:"required"`
	Roles           []string `json:"roles"`
}

type UpdateDeliveryRequest struct {
	FirstName       string   `json:"firstName" validate:"required,max=50"`
	LastName        string   `json:"lastName" validate:"required,max=50"`
	Email           string   `json:"email" validate:"required,email,max=50"`
	PhoneNumber     string   `json:"phoneNumber" validate:"required,max=50"`
	PlainPassword   string   `json:"plainPassword" validate:"omitempty,min=6,eqfield=ConfirmPassword"`
	ConfirmPassword string   `json:"password"`
	Roles           []string `json:"roles"`
}

type UpdateDeliveryBulkItem struct {
	ID int64 `json:"id" validate:"required"`
	UpdateDeliveryRequest
}

type DeliveryResponse struct {
	ID          int64    `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	Blocked     bool     `json:"blocked"`
	Roles       []string `json:"roles"`
}
