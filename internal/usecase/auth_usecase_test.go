package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"pharmacare-api/config"
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// testDB is a connection-less gorm handle. It survives WithContext and
// Begin, which is enough for paths that fail before any SQL runs.
func testDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func testUsecaseLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

func encodePassword(t *testing.T, subject entity.CredentialSubject) {
	t.Helper()
	if err := entity.EncodePassword(subject); err != nil {
		t.Fatalf("EncodePassword: %v", err)
	}
}

type stubAuditService struct {
	err error
}

func (s *stubAuditService) LogAuth(tx *gorm.DB, actorID int64, actorRole, action, email string) {}

func (s *stubAuditService) LogCreate(tx *gorm.DB, actorID *int64, actorRole, action string, entityName string, entityID int64, newValue interface{}) error {
	return s.err
}

func (s *stubAuditService) LogUpdate(tx *gorm.DB, actorID *int64, actorRole, action string, entityName string, entityID int64, oldValue, newValue interface{}) error {
	return s.err
}

func (s *stubAuditService) LogDelete(tx *gorm.DB, actorID *int64, actorRole, action string, entityName string, entityID int64, oldValue interface{}) error {
	return s.err
}

type stubUserRepo struct {
	byID      map[int64]*entity.User
	byEmail   map[string]*entity.User
	updateErr error
}

func (s *stubUserRepo) Create(db *gorm.DB, user *entity.User) error { return nil }

func (s *stubUserRepo) FindAll(db *gorm.DB) ([]entity.User, error) { return nil, nil }

func (s *stubUserRepo) FindByID(db *gorm.DB, id int64) (*entity.User, error) {
	return s.byID[id], nil
}

func (s *stubUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return s.byEmail[email], nil
}

func (s *stubUserRepo) Update(db *gorm.DB, user *entity.User) error { return s.updateErr }

func (s *stubUserRepo) Delete(db *gorm.DB, user *entity.User) error { return nil }

type stubAdminPharmacyRepo struct {
	byID         map[int64]*entity.AdminPharmacy
	byEmail      map[string]*entity.AdminPharmacy
	emailLookups int
	updateErr    error
}

func (s *stubAdminPharmacyRepo) Create(db *gorm.DB, admin *entity.AdminPharmacy) error { return nil }

func (s *stubAdminPharmacyRepo) FindAll(db *gorm.DB) ([]entity.AdminPharmacy, error) {
	return nil, nil
}

func (s *stubAdminPharmacyRepo) FindByID(db *gorm.DB, id int64) (*entity.AdminPharmacy, error) {
	return s.byID[id], nil
}

func (s *stubAdminPharmacyRepo) FindByEmail(db *gorm.DB, email string) (*entity.AdminPharmacy, error) {
	s.emailLookups++
	return s.byEmail[email], nil
}

func (s *stubAdminPharmacyRepo) Update(db *gorm.DB, admin *entity.AdminPharmacy) error {
	return s.updateErr
}

func (s *stubAdminPharmacyRepo) Delete(db *gorm.DB, admin *entity.AdminPharmacy) error { return nil }

func (s *stubAdminPharmacyRepo) Count(db *gorm.DB) (int64, error) { return 0, nil }

type stubCustomerRepo struct {
	byEmail map[string]*entity.Customer
}

func (s *stubCustomerRepo) Create(db *gorm.DB, customer *entity.Customer) error { return nil }

func (s *stubCustomerRepo) FindAll(db *gorm.DB) ([]entity.Customer, error) { return nil, nil }

func (s *stubCustomerRepo) FindByID(db *gorm.DB, id int64) (*entity.Customer, error) {
	return nil, nil
}

func (s *stubCustomerRepo) FindByEmail(db *gorm.DB, email string) (*entity.Customer, error) {
	return s.byEmail[email], nil
}

func (s *stubCustomerRepo) Update(db *gorm.DB, customer *entity.Customer) error { return nil }

func (s *stubCustomerRepo) Delete(db *gorm.DB, customer *entity.Customer) error { return nil }

func (s *stubCustomerRepo) Count(db *gorm.DB) (int64, error) { return 0, nil }

type stubDeliveryRepo struct {
	byEmail map[string]*entity.Delivery
}

func (s *stubDeliveryRepo) Create(db *gorm.DB, delivery *entity.Delivery) error { return nil }

func (s *stubDeliveryRepo) FindAll(db *gorm.DB) ([]entity.Delivery, error) { return nil, nil }

func (s *stubDeliveryRepo) FindByID(db *gorm.DB, id int64) (*entity.Delivery, error) {
	return nil, nil
}

func (s *stubDeliveryRepo) FindByEmail(db *gorm.DB, email string) (*entity.Delivery, error) {
	return s.byEmail[email], nil
}

func (s *stubDeliveryRepo) Update(db *gorm.DB, delivery *entity.Delivery) error { return nil }

func (s *stubDeliveryRepo) Delete(db *gorm.DB, delivery *entity.Delivery) error { return nil }

func (s *stubDeliveryRepo) Count(db *gorm.DB) (int64, error) { return 0, nil }

type stubPharmacistRepo struct {
	byEmail map[string]*entity.Pharmacist
}

func (s *stubPharmacistRepo) Create(db *gorm.DB, pharmacist *entity.Pharmacist) error { return nil }

func (s *stubPharmacistRepo) FindAll(db *gorm.DB) ([]entity.Pharmacist, error) { return nil, nil }

func (s *stubPharmacistRepo) FindByID(db *gorm.DB, id int64) (*entity.Pharmacist, error) {
	return nil, nil
}

func (s *stubPharmacistRepo) FindByEmail(db *gorm.DB, email string) (*entity.Pharmacist, error) {
	return s.byEmail[email], nil
}

func (s *stubPharmacistRepo) Update(db *gorm.DB, pharmacist *entity.Pharmacist) error { return nil }

func (s *stubPharmacistRepo) Delete(db *gorm.DB, pharmacist *entity.Pharmacist) error { return nil }

func (s *stubPharmacistRepo) Count(db *gorm.DB) (int64, error) { return 0, nil }

func newTestAuthUsecase(
	users *stubUserRepo,
	admins *stubAdminPharmacyRepo,
	customers *stubCustomerRepo,
	deliveries *stubDeliveryRepo,
	pharmacists *stubPharmacistRepo,
) AuthUsecase {
	return NewAuthUsecase(testDB(), testUsecaseLogger(), users, admins, customers, deliveries, pharmacists, testJWTService(), nil, &stubAuditService{})
}

func TestLoginCustomerBlockedBeforePassword(t *testing.T) {
	customer := &entity.Customer{ID: 3, Email: "jane@example.com", Blocked: true, PlainPassword: "secret123"}
	encodePassword(t, customer)

	u := newTestAuthUsecase(
		&stubUserRepo{},
		&stubAdminPharmacyRepo{},
		&stubCustomerRepo{byEmail: map[string]*entity.Customer{customer.Email: customer}},
		&stubDeliveryRepo{},
		&stubPharmacistRepo{},
	)

	// Even with a wrong password the blocked flag must win, so a
	// blocked account never learns whether its password was right.
	_, err := u.LoginCustomer(context.Background(), &dto.RoleLoginRequest{Email: customer.Email, Password: "wrong"})
	if !errors.Is(err, ErrAccountBlocked) {
		t.Errorf("err = %v, want ErrAccountBlocked", err)
	}
}

func TestLoginDeliveryBlockedBeforePassword(t *testing.T) {
	delivery := &entity.Delivery{ID: 5, Email: "driver@example.com", Blocked: true, PlainPassword: "secret123"}
	encodePassword(t, delivery)

	u := newTestAuthUsecase(
		&stubUserRepo{},
		&stubAdminPharmacyRepo{},
		&stubCustomerRepo{},
		&stubDeliveryRepo{byEmail: map[string]*entity.Delivery{delivery.Email: delivery}},
		&stubPharmacistRepo{},
	)

	_, err := u.LoginDelivery(context.Background(), &dto.RoleLoginRequest{Email: delivery.Email, Password: "wrong"})
	if !errors.Is(err, ErrAccountBlocked) {
		t.Errorf("err = %v, want ErrAccountBlocked", err)
	}
}

func TestLoginResolvesUsersBeforePharmacyAdmins(t *testing.T) {
	user := &entity.User{ID: 1, Email: "admin@example.com", Roles: entity.RoleList{entity.RoleAdmin}, PlainPassword: "adminpw"}
	encodePassword(t, user)

	admins := &stubAdminPharmacyRepo{byEmail: map[string]*entity.AdminPharmacy{
		user.Email: {ID: 9, Email: user.Email},
	}}
	u := newTestAuthUsecase(
		&stubUserRepo{byEmail: map[string]*entity.User{user.Email: user}},
		admins,
		&stubCustomerRepo{},
		&stubDeliveryRepo{},
		&stubPharmacistRepo{},
	)

	_, err := u.Login(context.Background(), &dto.LoginRequest{Username: user.Email, Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if admins.emailLookups != 0 {
		t.Errorf("pharmacy admin store consulted %d times, want 0", admins.emailLookups)
	}
}

func TestLoginFallsBackToPharmacyAdmins(t *testing.T) {
	admin := &entity.AdminPharmacy{ID: 2, Email: "bob@pharma.example", PlainPassword: "bobpw"}
	encodePassword(t, admin)

	admins := &stubAdminPharmacyRepo{byEmail: map[string]*entity.AdminPharmacy{admin.Email: admin}}
	u := newTestAuthUsecase(&stubUserRepo{}, admins, &stubCustomerRepo{}, &stubDeliveryRepo{}, &stubPharmacistRepo{})

	_, err := u.Login(context.Background(), &dto.LoginRequest{Username: admin.Email, Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
	if admins.emailLookups != 1 {
		t.Errorf("pharmacy admin store consulted %d times, want 1", admins.emailLookups)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	u := newTestAuthUsecase(&stubUserRepo{}, &stubAdminPharmacyRepo{}, &stubCustomerRepo{}, &stubDeliveryRepo{}, &stubPharmacistRepo{})

	_, err := u.Login(context.Background(), &dto.LoginRequest{Username: "ghost@example.com", Password: "whatever"})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}
