package usecase

import (
	"context"
	"errors"
	"testing"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserUsecase(users *stubUserRepo, admins *stubAdminPharmacyRepo, audit *stubAuditService) UserUsecase {
	return NewUserUsecase(testDB(), testUsecaseLogger(), users, admins, audit)
}

func adminIdentity(id int64) jwt.Identity {
	return jwt.Identity{ID: id, Roles: []string{entity.RoleAdmin}}
}

func pharmacyAdminIdentity(id int64) jwt.Identity {
	return jwt.Identity{ID: id, Roles: []string{entity.RoleAdminPharmacy}}
}

// The two administrator kinds live in separate tables whose ids can
// collide, so the profile must be resolved against the store the
// principal logged in from.
func TestGetProfileDispatchesOnPrincipalStore(t *testing.T) {
	users := &stubUserRepo{byID: map[int64]*entity.User{
		1: {ID: 1, FirstName: "Alice", Email: "alice@hq.example", Roles: entity.RoleList{entity.RoleAdmin}},
	}}
	admins := &stubAdminPharmacyRepo{byID: map[int64]*entity.AdminPharmacy{
		1: {ID: 1, FirstName: "Bob", Email: "bob@pharma.example", Roles: entity.RoleList{entity.RoleAdminPharmacy}},
	}}
	u := newTestUserUsecase(users, admins, &stubAuditService{})

	profile, err := u.GetProfile(context.Background(), pharmacyAdminIdentity(1))
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Email != "bob@pharma.example" {
		t.Errorf("pharmacy admin got profile %q, want bob@pharma.example", profile.Email)
	}

	profile, err = u.GetProfile(context.Background(), adminIdentity(1))
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Email != "alice@hq.example" {
		t.Errorf("platform admin got profile %q, want alice@hq.example", profile.Email)
	}
}

func TestGetProfilePharmacyAdminNotFound(t *testing.T) {
	users := &stubUserRepo{byID: map[int64]*entity.User{
		1: {ID: 1, Email: "alice@hq.example"},
	}}
	u := newTestUserUsecase(users, &stubAdminPharmacyRepo{}, &stubAuditService{})

	_, err := u.GetProfile(context.Background(), pharmacyAdminIdentity(1))

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestUpdatePasswordPharmacyAdminWrongCurrent(t *testing.T) {
	admin := &entity.AdminPharmacy{ID: 1, Email: "bob@pharma.example", PlainPassword: "rightpw"}
	encodePassword(t, admin)

	admins := &stubAdminPharmacyRepo{byID: map[int64]*entity.AdminPharmacy{admin.ID: admin}}
	u := newTestUserUsecase(&stubUserRepo{}, admins, &stubAuditService{})

	err := u.UpdatePassword(context.Background(), pharmacyAdminIdentity(1), &dto.UpdatePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpass1",
		ConfirmPassword: "newpass1",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("err = %v, want ErrWrongPassword", err)
	}
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	users := &stubUserRepo{
		byID:      map[int64]*entity.User{1: {ID: 1, Email: "alice@hq.example"}},
		updateErr: &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"},
	}
	u := newTestUserUsecase(users, &stubAdminPharmacyRepo{}, &stubAuditService{})

	_, err := u.UpdateProfile(context.Background(), adminIdentity(1), &dto.UpdateProfileRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "taken@hq.example",
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUpdateProfileFailsWhenTrailWriteFails(t *testing.T) {
	auditErr := errors.New("audit insert failed")
	users := &stubUserRepo{byID: map[int64]*entity.User{1: {ID: 1, Email: "alice@hq.example"}}}
	u := newTestUserUsecase(users, &stubAdminPharmacyRepo{}, &stubAuditService{err: auditErr})

	_, err := u.UpdateProfile(context.Background(), adminIdentity(1), &dto.UpdateProfileRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@hq.example",
	})
	if !errors.Is(err, auditErr) {
		t.Errorf("err = %v, want the trail write error", err)
	}
}
