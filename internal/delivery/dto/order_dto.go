package dto

import "github.com/shopspring/decimal"

// OrderRequest covers create and edit. The five references are
// validated in the usecase so each missing one yields its own message.
type OrderRequest struct {
	CreationDate       string          `json:"creationDate" validate:"omitempty,datetime=2006-01-02"`
	RegistrationNumber string          `json:"registrationNumber" validate:"required,max=100"`
	Price              decimal.Decimal `json:"price" validate:"required"`
	Quantity           int             `json:"quantity" validate:"required,gte=1"`
	Statue             *bool           `json:"statue" validate:"required"`
	CustomerID         *int64          `json:"customerId"`
	PharmacistID       *int64          `json:"pharmacistId"`
	DeliveryID         *int64          `json:"deliveryId"`
	ProductID          *int64          `json:"productId"`
	PrescriptionID     *int64          `json:"prescriptionId"`
}

type UpdateOrderBulkItem struct {
	ID int64 `json:"id" validate:"required"`
	OrderRequest
}

type OrderResponse struct {
	ID                 int64                 `json:"id"`
	CreationDate       string                `json:"creationDate"`
	RegistrationNumber string                `json:"registrationNumber"`
	Price              decimal.Decimal       `json:"price"`
	Quantity           int                   `json:"quantity"`
	Statue             bool                  `json:"statue"`
	Customer           *CustomerResponse     `json:"customer,omitempty"`
	Pharmacist         *PharmacistResponse   `json:"pharmacist,omitempty"`
	Delivery           *DeliveryResponse     `json:"delivery,omitempty"`
	Product            *ProductResponse      `json:"product,omitempty"`
	Prescription       *PrescriptionResponse `json:"prescription,omitempty"`
}
