package entity

import "gorm.io/gorm"

// User is the generic back-office account (platform administrators).
// Unlike the per-role identity entities it carries no mandatory role:
// only the stored roles apply.
type User struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string   `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName  string   `gorm:"type:varchar(50);not null" json:"lastName"`
	Email     string   `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Roles     RoleList `gorm:"type:jsonb" json:"roles"`
	Password  string   `gorm:"not null" json:"-"`

	PlainPassword string `gorm:"-" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	return EncodePassword(u)
}

func (u *User) AccountID() int64 {
	return u.ID
}

func (u *User) AccountEmail() string {
	return u.Email
}

func (u *User) DisplayName() (string, string) {
	return u.FirstName, u.LastName
}

func (u *User) GrantedRoles() []string {
	seen := make(map[string]struct{}, len(u.Roles))
	roles := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	return roles
}

func (u *User) PasswordHash() string {
	return u.Password
}

func (u *User) SetPasswordHash(hash string) {
	u.Password = hash
}

func (u *User) TransientPassword() string {
	return u.PlainPassword
}

func (u *User) ClearTransientPassword() {
	u.PlainPassword = ""
}

var _ CredentialSubject = (*User)(nil)
