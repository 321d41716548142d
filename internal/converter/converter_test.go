package converter

import (
	"testing"
	"time"

	"pharmacare-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestCustomerToResponse(t *testing.T) {
	customer := &entity.Customer{
		ID:          3,
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		PhoneNumber: "0600000000",
		Address:     "12 Main Street",
		Blocked:     true,
	}

	got := CustomerToResponse(customer)

	if got.ID != 3 || got.Email != "jane@example.com" || !got.Blocked {
		t.Errorf("response = %+v", got)
	}
	if len(got.Roles) != 1 || got.Roles[0] != entity.RoleCustomer {
		t.Errorf("roles = %v, want implicit customer role", got.Roles)
	}
}

func TestPharmacyToResponseCarriesPicture(t *testing.T) {
	now := time.Now()
	pharmacy := &entity.Pharmacy{
		ID:      5,
		Name:    "Central Pharmacy",
		Address: "1 Square",
		City:    "Lyon",
	}
	pharmacy.Picture.Picture = "/images/pharmacy_images/abc.png"
	pharmacy.ImageName = "abc.png"
	pharmacy.ImageSize = 1024
	pharmacy.ImageUpdatedAt = &now

	got := PharmacyToResponse(pharmacy)

	if got.Picture != "/images/pharmacy_images/abc.png" {
		t.Errorf("picture = %q", got.Picture)
	}
	if got.ImageName != "abc.png" || got.ImageSize != 1024 || got.ImageUpdatedAt == nil {
		t.Errorf("image metadata = %+v", got)
	}
}

func TestOrderToResponse(t *testing.T) {
	creationDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	customerID := int64(3)
	order := &entity.Order{
		ID:                 9,
		CreationDate:       creationDate,
		RegistrationNumber: "ORD-001",
		Price:              decimal.RequireFromString("12.50"),
		Quantity:           2,
		Statue:             true,
		CustomerID:         &customerID,
		Customer:           &entity.Customer{ID: customerID, Email: "jane@example.com"},
	}

	got := OrderToResponse(order)

	if got.CreationDate != "2024-03-15" {
		t.Errorf("creation date = %q", got.CreationDate)
	}
	if !got.Price.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("price = %s", got.Price)
	}
	if got.Customer == nil || got.Customer.ID != customerID {
		t.Errorf("customer = %+v", got.Customer)
	}
	if got.Pharmacist != nil || got.Delivery != nil || got.Product != nil || got.Prescription != nil {
		t.Error("unset relations should stay nil")
	}
}

func TestOrdersToResponsesEmpty(t *testing.T) {
	got := OrdersToResponses(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}
