package entity

import "gorm.io/gorm"

// Customer represents a shop customer account.
type Customer struct {
	ID          int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string   `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName    string   `gorm:"type:varchar(50);not null" json:"lastName"`
	Email       string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	PhoneNumber string   `gorm:"type:varchar(50);not null" json:"phoneNumber"`
	Address     string   `gorm:"type:varchar(50);not null" json:"address"`
	Blocked     bool     `gorm:"not null;default:false" json:"blocked"`
	Roles       RoleList `gorm:"type:jsonb" json:"roles"`
	Password    string   `gorm:"not null" json:"-"`

	// Transient, write-only. Hashed and cleared by BeforeSave.
	PlainPassword string `gorm:"-" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeSave(tx *gorm.DB) error {
	return EncodePassword(c)
}

func (c *Customer) AccountID() int64 {
	return c.ID
}

func (c *Customer) AccountEmail() string {
	return c.Email
}

func (c *Customer) DisplayName() (string, string) {
	return c.FirstName, c.LastName
}

// GrantedRoles guarantees every customer at least has ROLE_CUSTOMER.
func (c *Customer) GrantedRoles() []string {
	return withMandatoryRole(c.Roles, RoleCustomer)
}

func (c *Customer) PasswordHash() string {
	return c.Password
}

func (c *Customer) SetPasswordHash(hash string) {
	c.Password = hash
}

func (c *Customer) TransientPassword() string {
	return c.PlainPassword
}

func (c *Customer) ClearTransientPassword() {
	c.PlainPassword = ""
}

var _ CredentialSubject = (*Customer)(nil)
