package entity

import (
	"strings"
	"testing"
)

func TestEncodePasswordHashesAndClearsPlaintext(t *testing.T) {
	customer := &Customer{PlainPassword: "secret123"}

	if err := EncodePassword(customer); err != nil {
		t.Fatalf("EncodePassword: %v", err)
	}

	if customer.PlainPassword != "" {
		t.Error("transient password was not cleared")
	}
	if customer.Password == "" {
		t.Fatal("password hash was not set")
	}
	if customer.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(customer.Password, "$2") {
		t.Errorf("expected bcrypt hash, got %q", customer.Password)
	}
}

func TestEncodePasswordNoopWithoutPlaintext(t *testing.T) {
	customer := &Customer{Password: "existing-hash"}

	if err := EncodePassword(customer); err != nil {
		t.Fatalf("EncodePassword: %v", err)
	}
	if customer.Password != "existing-hash" {
		t.Errorf("hash changed without a new plaintext: %q", customer.Password)
	}
}

func TestVerifyPassword(t *testing.T) {
	customer := &Customer{PlainPassword: "secret123"}
	if err := EncodePassword(customer); err != nil {
		t.Fatalf("EncodePassword: %v", err)
	}

	if !VerifyPassword(customer, "secret123") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(customer, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestGrantedRolesAddsMandatoryRole(t *testing.T) {
	tests := []struct {
		name    string
		subject CredentialSubject
		want    []string
	}{
		{
			name:    "customer without stored roles",
			subject: &Customer{},
			want:    []string{RoleCustomer},
		},
		{
			name:    "customer with duplicate stored role",
			subject: &Customer{Roles: RoleList{RoleCustomer, RoleCustomer}},
			want:    []string{RoleCustomer},
		},
		{
			name:    "delivery keeps extra stored roles",
			subject: &Delivery{Roles: RoleList{RoleAdmin}},
			want:    []string{RoleAdmin, RoleDelivery},
		},
		{
			name:    "pharmacist",
			subject: &Pharmacist{},
			want:    []string{RolePharmacist},
		},
		{
			name:    "admin pharmacy",
			subject: &AdminPharmacy{},
			want:    []string{RoleAdminPharmacy},
		},
		{
			name:    "back-office user keeps only stored roles",
			subject: &User{Roles: RoleList{RoleAdmin, RoleAdmin}},
			want:    []string{RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.subject.GrantedRoles()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRoleListScan(t *testing.T) {
	var roles RoleList
	if err := roles.Scan([]byte(`["ROLE_ADMIN","ROLE_CUSTOMER"]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(roles) != 2 || roles[0] != RoleAdmin || roles[1] != RoleCustomer {
		t.Errorf("got %v", roles)
	}

	if err := roles.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if roles != nil {
		t.Errorf("expected nil after scanning nil, got %v", roles)
	}

	if err := roles.Scan(42); err == nil {
		t.Error("expected error scanning unsupported type")
	}
}

func TestRoleListValue(t *testing.T) {
	value, err := RoleList(nil).Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if string(value.([]byte)) != "[]" {
		t.Errorf("nil list should serialize as empty array, got %s", value)
	}

	value, err = RoleList{RoleAdmin}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if string(value.([]byte)) != `["ROLE_ADMIN"]` {
		t.Errorf("got %s", value)
	}
}

func TestSetPicture(t *testing.T) {
	var p Picture
	p.SetPicture("/images/pharmacy_images/abc.png", "abc.png", 2048)

	if p.Picture != "/images/pharmacy_images/abc.png" {
		t.Errorf("public path = %q", p.Picture)
	}
	if p.ImageName != "abc.png" {
		t.Errorf("image name = %q", p.ImageName)
	}
	if p.ImageSize != 2048 {
		t.Errorf("image size = %d", p.ImageSize)
	}
	if p.ImageUpdatedAt == nil {
		t.Error("ImageUpdatedAt not set")
	}
}
