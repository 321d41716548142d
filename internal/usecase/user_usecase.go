package usecase

import (
	"context"

	"pharmacare-api/internal/converter"
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/internal/domain/repository"
	"pharmacare-api/internal/service"
	"pharmacare-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserUsecase serves the back-office profile endpoints. Platform
// administrators live in the users store and pharmacy administrators
// in the admin_pharmacies store, so every operation dispatches on the
// authenticated identity's roles.
type UserUsecase interface {
	GetProfile(ctx context.Context, identity jwt.Identity) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, identity jwt.Identity, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UpdatePassword(ctx context.Context, identity jwt.Identity, req *dto.UpdatePasswordRequest) error
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	adminRepo    repository.AdminPharmacyRepository
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	adminRepo repository.AdminPharmacyRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		adminRepo:    adminRepo,
		auditService: auditService,
	}
}

// isPharmacyAdmin reports whether the principal belongs to the
// admin_pharmacies store rather than the users store.
func isPharmacyAdmin(roles []string) bool {
	for _, role := range roles {
		if role == entity.RoleAdminPharmacy {
			return true
		}
	}
	return false
}

func (u *userUsecase) GetProfile(ctx context.Context, identity jwt.Identity) (*dto.ProfileResponse, error) {
	db := u.db.WithContext(ctx)

	if isPharmacyAdmin(identity.Roles) {
		admin, err := u.adminRepo.FindByID(db, identity.ID)
		if err != nil {
			u.log.Warnf("Failed to find pharmacy admin: %+v", err)
			return nil, err
		}
		if admin == nil {
			return nil, &NotFoundError{Entity: "User"}
		}
		return converter.AdminPharmacyToProfileResponse(admin), nil
	}

	user, err := u.userRepo.FindByID(db, identity.ID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "User"}
	}
	return converter.UserToProfileResponse(user), nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, identity jwt.Identity, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var (
		profile *dto.ProfileResponse
		err     error
	)
	if isPharmacyAdmin(identity.Roles) {
		profile, err = u.updateAdminProfile(tx, identity.ID, req)
	} else {
		profile, err = u.updateUserProfile(tx, identity.ID, req)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return profile, nil
}

func (u *userUsecase) updateUserProfile(tx *gorm.DB, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "User"}
	}

	oldEmail := user.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &user.ID, primaryRole(user.GrantedRoles()), entity.AuditActionProfileUpdate, "user", user.ID, oldEmail, user.Email); err != nil {
		return nil, err
	}

	return converter.UserToProfileResponse(user), nil
}

func (u *userUsecase) updateAdminProfile(tx *gorm.DB, adminID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	admin, err := u.adminRepo.FindByID(tx, adminID)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy admin: %+v", err)
		return nil, err
	}
	if admin == nil {
		return nil, &NotFoundError{Entity: "User"}
	}

	oldEmail := admin.Email
	admin.FirstName = req.FirstName
	admin.LastName = req.LastName
	admin.Email = req.Email

	if err := u.adminRepo.Update(tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update pharmacy admin: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &admin.ID, primaryRole(admin.GrantedRoles()), entity.AuditActionProfileUpdate, "admin_pharmacy", admin.ID, oldEmail, admin.Email); err != nil {
		return nil, err
	}

	return converter.AdminPharmacyToProfileResponse(admin), nil
}

func (u *userUsecase) UpdatePassword(ctx context.Context, identity jwt.Identity, req *dto.UpdatePasswordRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var err error
	if isPharmacyAdmin(identity.Roles) {
		err = u.updateAdminPassword(tx, identity.ID, req)
	} else {
		err = u.updateUserPassword(tx, identity.ID, req)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *userUsecase) updateUserPassword(tx *gorm.DB, userID int64, req *dto.UpdatePasswordRequest) error {
	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return &NotFoundError{Entity: "User"}
	}

	if !entity.VerifyPassword(user, req.CurrentPassword) {
		return ErrWrongPassword
	}

	user.PlainPassword = req.NewPassword
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user password: %+v", err)
		return err
	}

	return u.auditService.LogUpdate(tx, &user.ID, primaryRole(user.GrantedRoles()), entity.AuditActionPasswordUpdate, "user", user.ID, nil, nil)
}

func (u *userUsecase) updateAdminPassword(tx *gorm.DB, adminID int64, req *dto.UpdatePasswordRequest) error {
	admin, err := u.adminRepo.FindByID(tx, adminID)
	if err != nil {
		u.log.Warnf("Failed to find pharmacy admin: %+v", err)
		return err
	}
	if admin == nil {
		return &NotFoundError{Entity: "User"}
	}

	if !entity.VerifyPassword(admin, req.CurrentPassword) {
		return ErrWrongPassword
	}

	admin.PlainPassword = req.NewPassword
	if err := u.adminRepo.Update(tx, admin); err != nil {
		u.log.Warnf("Failed to update pharmacy admin password: %+v", err)
		return err
	}

	return u.auditService.LogUpdate(tx, &admin.ID, primaryRole(admin.GrantedRoles()), entity.AuditActionPasswordUpdate, "admin_pharmacy", admin.ID, nil, nil)
}
