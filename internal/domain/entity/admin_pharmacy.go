package entity

import "gorm.io/gorm"

// AdminPharmacy represents the administrator account of one pharmacy.
type AdminPharmacy struct {
	ID         int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string   `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName   string   `gorm:"type:varchar(50);not null" json:"lastName"`
	Email      string   `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PharmacyID *int64   `gorm:"index" json:"pharmacyId,omitempty"`
	Roles      RoleList `gorm:"type:jsonb" json:"roles"`
	Password   string   `gorm:"not null" json:"-"`

	PlainPassword string `gorm:"-" json:"-"`

	Pharmacy *Pharmacy `gorm:"foreignKey:PharmacyID" json:"pharmacy,omitempty"`
}

func (AdminPharmacy) TableName() string {
	return "admin_pharmacies"
}

func (a *AdminPharmacy) BeforeSave(tx *gorm.DB) error {
	return EncodePassword(a)
}

func (a *AdminPharmacy) AccountID() int64 {
	return a.ID
}

func (a *AdminPharmacy) AccountEmail() string {
	return a.Email
}

func (a *AdminPharmacy) DisplayName() (string, string) {
	return a.FirstName, a.LastName
}

// GrantedRoles guarantees every pharmacy admin at least has
// ROLE_ADMIN_PHARMACY.
func (a *AdminPharmacy) GrantedRoles() []string {
	return withMandatoryRole(a.Roles, RoleAdminPharmacy)
}

func (a *AdminPharmacy) PasswordHash() string {
	return a.Password
}

func (a *AdminPharmacy) SetPasswordHash(hash string) {
	a.Password = hash
}

func (a *AdminPharmacy) TransientPassword() string {
	return a.PlainPassword
}

func (a *AdminPharmacy) ClearTransientPassword() {
	a.PlainPassword = ""
}

var _ CredentialSubject = (*AdminPharmacy)(nil)
