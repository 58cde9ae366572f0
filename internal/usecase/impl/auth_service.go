// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"foodmarket/config"
	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	authRepo          repository.AuthRepository
	vendorRepo        repository.VendorRepository
	customerRepo      repository.CustomerRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
	now               func() time.Time

	dummyHashOnce sync.Once
	dummyHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AuthRepo         repository.AuthRepository
	VendorRepo       repository.VendorRepository
	CustomerRepo     repository.CustomerRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		authRepo:          params.AuthRepo,
		vendorRepo:        params.VendorRepo,
		customerRepo:      params.CustomerRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignupVendor creates the credential and the vendor profile in one transaction.
func (srv *authService) SignupVendor(ctx context.Context, input *usecase.SignupVendorInput) (*entity.Vendor, error) {
	hashedPassword, err := srv.preparePassword(ctx, entity.RoleVendor, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	var vendor *entity.Vendor
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		auth, err := srv.createAuthentication(ctx, repoFactory.AuthRepo(), input.Email, hashedPassword, entity.RoleVendor)
		if err != nil {
			return err
		}

		vendor = &entity.Vendor{
			AuthID:       auth.ID,
			BusinessName: strings.TrimSpace(input.BusinessName),
			PhoneNumber:  strings.TrimSpace(input.PhoneNumber),
		}
		if err := repoFactory.VendorRepo().Create(ctx, vendor); err != nil {
			return errors.Wrap(err, "failed to create vendor during signup")
		}
		vendor.Email = auth.Email

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Vendor signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute vendor signup transaction")
	}

	srv.log(ctx).Info("Vendor registered", slog.Any("vendorID", vendor.ID))

	return vendor, nil
}

// SignupCustomer creates the credential and the customer profile in one transaction.
func (srv *authService) SignupCustomer(ctx context.Context, input *usecase.SignupCustomerInput) (*entity.Customer, error) {
	hashedPassword, err := srv.preparePassword(ctx, entity.RoleCustomer, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	var customer *entity.Customer
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		auth, err := srv.createAuthentication(ctx, repoFactory.AuthRepo(), input.Email, hashedPassword, entity.RoleCustomer)
		if err != nil {
			return err
		}

		customer = &entity.Customer{
			AuthID:      auth.ID,
			FirstName:   strings.TrimSpace(input.FirstName),
			LastName:    strings.TrimSpace(input.LastName),
			PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		}
		if err := repoFactory.CustomerRepo().Create(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to create customer during signup")
		}
		customer.Email = auth.Email

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Customer signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer signup transaction")
	}

	srv.log(ctx).Info("Customer registered", slog.Any("customerID", customer.ID))

	return customer, nil
}

func (srv *authService) preparePassword(ctx context.Context, role entity.Role, email, password string) (string, error) {
	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.Any("role", role), slog.String("email", email))

		return "", errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("role", role), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to hash password during signup")
	}

	return hashedPassword, nil
}

func (srv *authService) createAuthentication(ctx context.Context, authRepo repository.AuthRepository, email, hashedPassword string, role entity.Role) (*entity.Authentication, error) {
	auth := &entity.Authentication{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if err := authRepo.CreateAuthentication(ctx, auth); err != nil {
		return nil, errors.Wrap(err, "failed to create authentication during signup")
	}

	return auth, nil
}

// Login verifies the credential, issues a token pair and stores the refresh token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	authRecord, err := srv.loadLoginAuth(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	output := &usecase.LoginOutput{Role: authRecord.Role}
	var userID uuid.UUID

	switch authRecord.Role {
	case entity.RoleVendor:
		vendor, err := srv.vendorRepo.FindByAuthID(ctx, authRecord.ID)
		if err != nil {
			return nil, translateError(err, "failed to load vendor profile")
		}
		output.Vendor = vendor
		userID = vendor.ID
	case entity.RoleCustomer:
		customer, err := srv.customerRepo.FindByAuthID(ctx, authRecord.ID)
		if err != nil {
			return nil, translateError(err, "failed to load customer profile")
		}
		output.Customer = customer
		userID = customer.ID
	default:
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown role")
	}

	subject := service.TokenSubject{UserID: userID, AuthID: authRecord.ID, Role: authRecord.Role}
	output.AccessToken, output.RefreshToken, err = srv.tokenService.GenerateTokens(subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, authRecord.ID, output.RefreshToken); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Logged in", slog.Any("userID", userID), slog.Any("role", authRecord.Role))

	return output, nil
}

func (srv *authService) loadLoginAuth(ctx context.Context, email, password string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Read from primary in a short transaction to avoid stale reads on replicas.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		authRecord, findErr = repoFactory.AuthRepo().FindAuthenticationByEmail(ctx, email)

		return findErr
	})
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			// Unknown emails pay for one bcrypt comparison too, so response time does not reveal them.
			srv.hasher.Check(password, srv.loginDummyHash())
		}

		return nil, translateError(err, "login failed")
	}

	return authRecord, nil
}

// loginDummyHash is hashed with the live hasher so its cost matches stored credentials.
func (srv *authService) loginDummyHash() string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(uuid.NewString())
		if err != nil {
			srv.logger.Error("Failed to prepare login dummy hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

func (srv *authService) persistRefreshToken(ctx context.Context, authID uuid.UUID, refreshToken string) error {
	token := &entity.RefreshToken{
		AuthID:    authID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if srv.maxActiveSessions <= 0 {
		// No session limit: direct insert avoids unnecessary transaction overhead.
		if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, token); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		return nil
	}

	// Lock, count and insert in one transaction so concurrent logins cannot exceed the limit.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AuthRepo().AcquireSessionMutex(ctx, authID); err != nil {
			return errors.Wrap(err, "failed to lock credential for session limit check")
		}

		activeSessions, err := repoFactory.RefreshTokenRepo().CountActiveSessionsByAuthID(ctx, authID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return domainerrors.ErrSessionLimitExceeded.WrapMessage("active session limit exceeded")
		}

		return errors.Wrap(repoFactory.RefreshTokenRepo().CreateRefreshToken(ctx, token), "failed to store refresh token")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute session transaction")
	}

	return nil
}

// RefreshToken issues a new access token. The refresh token itself is left unchanged.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh with invalid token", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		return nil, translateError(err, "refresh token not found or expired")
	}
	if stored.AuthID != claims.AuthID {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token does not match its session")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(service.TokenSubject{
		UserID: claims.UserID,
		AuthID: claims.AuthID,
		Role:   claims.Role,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends the session by deleting its refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// An expired token can still end its stored session.
		srv.log(ctx).Debug("Logout with invalid token", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		return translateError(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Logged out")

	return nil
}
