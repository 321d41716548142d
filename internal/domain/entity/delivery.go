package entity

import "gorm.io/gorm"

// Delivery represents a delivery-agent account.
type Delivery struct {
	ID          int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string   `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName    string   `gorm:"type:varchar(50);not null" json:"lastName"`
	Email       string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	PhoneNumber string   `gorm:"type:varchar(50);not null" json:"phoneNumber"`
	Blocked     bool     `gorm:"not null;default:false" json:"blocked"`
	Roles       RoleList `gorm:"type:jsonb" json:"roles"`
	Password    string   `gorm:"not null" json:"-"`

	PlainPassword string `gorm:"-" json:"-"`
}

func (Delivery) TableName() string {
	return "deliveries"
}

func (d *Delivery) BeforeSave(tx *gorm.DB) error {
	return EncodePassword(d)
}

func (d *Delivery) AccountID() int64 {
	return d.ID
}

func (d *Delivery) AccountEmail() string {
	return d.Email
}

func (d *Delivery) DisplayName() (string, string) {
	return d.FirstName, d.LastName
}

// GrantedRoles guarantees every delivery agent at least has ROLE_DELIVERY.
func (d *Delivery) GrantedRoles() []string {
	return withMandatoryRole(d.Roles, RoleDelivery)
}

func (d *Delivery) PasswordHash() string {
	return d.Password
}

func (d *Delivery) SetPasswordHash(hash string) {
	d.Password = hash
}

func (d *Delivery) TransientPassword() string {
	return d.PlainPassword
}

func (d *Delivery) ClearTransientPassword() {
	d.PlainPassword = ""
}

var _ CredentialSubject = (*Delivery)(nil)
