package usecase

import (
	"context"
	"fmt"

	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/internal/domain/repository"
	"pharmacare-api/internal/service"
	"pharmacare-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginCustomer(ctx context.Context, req *dto.RoleLoginRequest) (*dto.CustomerLoginResponse, error)
	LoginDelivery(ctx context.Context, req *dto.RoleLoginRequest) (*dto.DeliveryLoginResponse, error)
	LoginPharmacist(ctx context.Context, req *dto.RoleLoginRequest) (*dto.PharmacistLoginResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, identity jwt.Identity, accessTokenID string) error
}

type authUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	userRepo       repository.UserRepository
	adminRepo      repository.AdminPharmacyRepository
	customerRepo   repository.CustomerRepository
	deliveryRepo   repository.DeliveryRepository
	pharmacistRepo repository.PharmacistRepository
	jwtService     *jwt.JWTService
	redisClient    *redis.Client
	auditService   service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	adminRepo repository.AdminPharmacyRepository,
	customerRepo repository.CustomerRepository,
	deliveryRepo repository.DeliveryRepository,
	pharmacistRepo repository.PharmacistRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:             db,
		log:            log,
		userRepo:       userRepo,
		adminRepo:      adminRepo,
		customerRepo:   customerRepo,
		deliveryRepo:   deliveryRepo,
		pharmacistRepo: pharmacistRepo,
		jwtService:     jwtService,
		redisClient:    redisClient,
		auditService:   auditService,
	}
}

// tokenPair holds a freshly issued access/refresh pair already stored
// in the Redis whitelist.
type tokenPair struct {
	accessToken  string
	refreshToken string
	expiresIn    int64
}

func (u *authUsecase) issueTokens(ctx context.Context, identity jwt.Identity) (*tokenPair, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(identity)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(identity)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%d:%s", identity.ID, accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%d:%s", identity.ID, refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &tokenPair{
		accessToken:  accessToken,
		refreshToken: refreshToken,
		expiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func identityOf(subject entity.CredentialSubject) jwt.Identity {
	firstName, lastName := subject.DisplayName()
	return jwt.Identity{
		ID:        subject.AccountID(),
		Email:     subject.AccountEmail(),
		FirstName: firstName,
		LastName:  lastName,
		Roles:     subject.GrantedRoles(),
	}
}

// Login authenticates back-office accounts. The username carries the
// email and is resolved against the user store first, then the
// pharmacy admin store.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var subject entity.CredentialSubject

	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user != nil {
		subject = user
	} else {
		admin, err := u.adminRepo.FindByEmail(u.db.WithContext(ctx), req.Username)
		if err != nil {
			u.log.Warnf("Failed to find pharmacy admin by email: %+v", err)
			return nil, err
		}
		if admin == nil {
			return nil, &NotFoundError{Entity: "User"}
		}
		subject = admin
	}

	if !entity.VerifyPassword(subject, req.Password) {
		return nil, ErrInvalidCredentials
	}

	identity := identityOf(subject)
	pair, err := u.issueTokens(ctx, identity)
	if err != nil {
		return nil, err
	}

	u.auditService.LogAuth(u.db.WithContext(ctx), identity.ID, primaryRole(identity.Roles), entity.AuditActionLogin, identity.Email)

	return &dto.LoginResponse{
		UserID:       identity.ID,
		Email:        identity.Email,
		FirstName:    identity.FirstName,
		LastName:     identity.LastName,
		Roles:        identity.Roles,
		Token:        pair.accessToken,
		RefreshToken: pair.refreshToken,
		ExpiresIn:    pair.expiresIn,
	}, nil
}

func (u *authUsecase) LoginCustomer(ctx context.Context, req *dto.RoleLoginRequest) (*dto.CustomerLoginResponse, error) {
	customer, err := u.customerRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find customer by email: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, &NotFoundError{Entity: "Email"}
	}
	if customer.Blocked {
		return nil, ErrAccountBlocked
	}

	if !entity.VerifyPassword(customer, req.Password) {
		return nil, ErrInvalidCredentials
	}

	identity := identityOf(customer)
	pair, err := u.issueTokens(ctx, identity)
	if err != nil {
		return nil, err
	}

	u.auditService.LogAuth(u.db.WithContext(ctx), identity.ID, entity.RoleCustomer, entity.AuditActionLogin, identity.Email)

	return &dto.CustomerLoginResponse{
		Customer: dto.AccountSummary{
			ID:        customer.ID,
			FirstName: customer.FirstName,
			LastName:  customer.LastName,
			Email:     customer.Email,
		},
		Token:        pair.accessToken,
		RefreshToken: pair.refreshToken,
		ExpiresIn:    pair.expiresIn,
	}, nil
}

func (u *authUsecase) LoginDelivery(ctx context.Context, req *dto.RoleLoginRequest) (*dto.DeliveryLoginResponse, error) {
	delivery, err := u.deliveryRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find delivery agent by email: %+v", err)
		return nil, err
	}
	if delivery == nil {
		return nil, &NotFoundError{Entity: "Email"}
	}
	if delivery.Blocked {
		return nil, ErrAccountBlocked
	}

	if !entity.VerifyPassword(delivery, req.Password) {
		return nil, ErrInvalidCredentials
	}

	identity := identityOf(delivery)
	pair, err := u.issueTokens(ctx, identity)
	if err != nil {
		return nil, err
	}

	u.auditService.LogAuth(u.db.WithContext(ctx), identity.ID, entity.RoleDelivery, entity.AuditActionLogin, identity.Email)

	return &dto.DeliveryLoginResponse{
		Delivery: dto.AccountSummary{
			ID:        delivery.ID,
			FirstName: delivery.FirstName,
			LastName:  delivery.LastName,
			Email:     delivery.Email,
		},
		Token:        pair.accessToken,
		RefreshToken: pair.refreshToken,
		ExpiresIn:    pair.expiresIn,
	}, nil
}

func (u *authUsecase) LoginPharmacist(ctx context.Context, req *dto.RoleLoginRequest) (*dto.PharmacistLoginResponse, error) {
	pharmacist, err := u.pharmacistRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find pharmacist by email: %+v", err)
		return nil, err
	}
	if pharmacist == nil {
		return nil, &NotFoundError{Entity: "Email"}
	}

	if !entity.VerifyPassword(pharmacist, req.Password) {
		return nil, ErrInvalidCredentials
	}

	identity := identityOf(pharmacist)
	pair, err := u.issueTokens(ctx, identity)
	if err != nil {
		return nil, err
	}

	u.auditService.LogAuth(u.db.WithContext(ctx), identity.ID, entity.RolePharmacist, entity.AuditActionLogin, identity.Email)

	return &dto.PharmacistLoginResponse{
		Pharmacist: dto.AccountSummary{
			ID:        pharmacist.ID,
			FirstName: pharmacist.FirstName,
			LastName:  pharmacist.LastName,
			Email:     pharmacist.Email,
			Roles:     pharmacist.GrantedRoles(),
		},
		Token:        pair.accessToken,
		RefreshToken: pair.refreshToken,
		ExpiresIn:    pair.expiresIn,
	}, nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%d:%s", claims.Identity.ID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is no longer usable.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	pair, err := u.issueTokens(ctx, claims.Identity)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshTokenResponse{
		Token:        pair.accessToken,
		RefreshToken: pair.refreshToken,
		ExpiresIn:    pair.expiresIn,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, identity jwt.Identity, accessTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%d:%s", identity.ID, accessTokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	// Revoke any outstanding refresh tokens of the same account.
	refreshPattern := fmt.Sprintf("refresh_token:%d:*", identity.ID)
	refreshKeys, err := u.redisClient.Keys(ctx, refreshPattern).Result()
	if err != nil {
		u.log.Warnf("Failed to get refresh token keys: %+v", err)
		return err
	}
	if len(refreshKeys) > 0 {
		if err := u.redisClient.Del(ctx, refreshKeys...).Err(); err != nil {
			u.log.Warnf("Failed to delete refresh tokens: %+v", err)
			return err
		}
	}

	u.auditService.LogAuth(u.db.WithContext(ctx), identity.ID, primaryRole(identity.Roles), entity.AuditActionLogout, identity.Email)

	return nil
}

func primaryRole(roles []string) string {
	if len(roles) == 0 {
		return ""
	}
	return roles[0]
}
