package entity

import "golang.org/x/crypto/bcrypt"

// CredentialSubject is implemented by every account entity that can log
// in (Customer, Delivery, Pharmacist, AdminPharmacy, User). The password
// column always holds a bcrypt hash; the transient plaintext slot is
// write-only and consumed by EncodePassword before the row is saved.
type CredentialSubject interface {
	AccountID() int64
	AccountEmail() string
	DisplayName() (firstName, lastName string)
	GrantedRoles() []string
	PasswordHash() string
	SetPasswordHash(hash string)
	TransientPassword() string
	ClearTransientPassword()
}

// EncodePassword hashes the transient plaintext password, if one was
// set, into the password column and clears the transient slot. Each
// identity entity delegates to it from its gorm BeforeSave hook, so a
// plaintext credential can never reach storage.
func EncodePassword(subject CredentialSubject) error {
	plain := subject.TransientPassword()
	if plain == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	subject.SetPasswordHash(string(hash))
	subject.ClearTransientPassword()
	return nil
}

// VerifyPassword reports whether plain matches the subject's stored hash.
func VerifyPassword(subject CredentialSubject, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(subject.PasswordHash()), []byte(plain)) == nil
}
