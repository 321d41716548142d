package entity

import "gorm.io/gorm"

// Pharmacist represents a pharmacist account attached to one pharmacy.
type Pharmacist struct {
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

func (Pharmacist) TableName() string {
	return "pharmacists"
}

func (p *Pharmacist) BeforeSave(tx *gorm.DB) error {
	return EncodePassword(p)
}

func (p *Pharmacist) AccountID() int64 {
	return p.ID
}

func (p *Pharmacist) AccountEmail() string {
	return p.Email
}

func (p *Pharmacist) DisplayName() (string, string) {
	return p.FirstName, p.LastName
}

// GrantedRoles guarantees every pharmacist at least has ROLE_PHARMACIST.
func (p *Pharmacist) GrantedRoles() []string {
	return withMandatoryRole(p.Roles, RolePharmacist)
}

func (p *Pharmacist) PasswordHash() string {
	return p.Password
}

func (p *Pharmacist) SetPasswordHash(hash string) {
	p.Password = hash
}

func (p *Pharmacist) TransientPassword() string {
	return p.PlainPassword
}

func (p *Pharmacist) ClearTransientPassword() {
	p.PlainPassword = ""
}

var _ CredentialSubject = (*Pharmacist)(nil)
