package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Role tags checked per-request to gate access.
const (
	RoleAdmin         = "ROLE_ADMIN"
	RoleAdminPharmacy = "ROLE_ADMIN_PHARMACY"
	RoleCustomer      = "ROLE_CUSTOMER"
	RoleDelivery      = "ROLE_DELIVERY"
	RolePharmacist    = "ROLE_PHARMACIST"
)

// RoleList is a jsonb-backed list of role tags.
type RoleList []string

// Value implements driver.Valuer.
func (r RoleList) Value() (driver.Value, error) {
	if r == nil {
		r = RoleList{}
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner.
func (r *RoleList) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal jsonb value:", value))
	}
	return json.Unmarshal(bytes, r)
}

// withMandatoryRole guarantees the account's baked-in role is present
// regardless of what is stored, collapsing duplicates.
func withMandatoryRole(stored RoleList, mandatory string) []string {
	roles := make([]string, 0, len(stored)+1)
	seen := make(map[string]struct{}, len(stored)+1)
	for _, role := range append(append(RoleList{}, stored...), mandatory) {
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	return roles
}
