package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/store"
	"github.com/MKhiriev/warm-whisper/internal/utils"
	"github.com/MKhiriev/warm-whisper/models"
)

// minPasswordLength is the shortest password accepted at signup.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, login/logout
// timestamping and the JWT token lifecycle, using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// clock is the authority clock used for lastLogin/lastLogout stamps.
	// Client-supplied times are never trusted.
	clock func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		clock:          time.Now,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that the email is non-empty and the password long enough,
// hashes the password with bcrypt, and delegates persistence to the
// UserRepository. lastLogin/lastLogout start at the sentinel value so that
// a first-ever login is distinguishable later.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrPasswordTooShort if the password has fewer than 6 characters.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyRegistered).
func (a *authService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if len(password) < minPasswordLength {
		log.Error().Str("email", user.Email).Msg("password is too short")
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)
	user.LastLogin = models.TimeNever
	user.LastLogout = models.TimeNever

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account.
//
// It looks the account up by email, compares the bcrypt hash against the
// supplied password and, on success, stamps lastLogin with the server
// clock. The returned user carries the fresh lastLogin value.
//
// Returns the authenticated account record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. account not
//     found, see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match. lastLogin is left
//     untouched in that case.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().Str("email", email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	loginTime := a.clock().UTC().Format(models.TimeLayout)
	if err = a.userRepository.UpdateLastLogin(ctx, email, loginTime); err != nil {
		log.Err(err).Str("email", email).Msg("failed to update last login time")
		return models.User{}, fmt.Errorf("failed to update last login time: %w", err)
	}
	foundUser.LastLogin = loginTime

	return foundUser, nil
}

// Logout stamps lastLogout of the account with the server clock.
//
// Returns a wrapped storage error if the account does not exist
// (store.ErrNoUserWasFound).
func (a *authService) Logout(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("invalid logout data provided")
		return ErrInvalidDataProvided
	}

	logoutTime := a.clock().UTC().Format(models.TimeLayout)
	if err := a.userRepository.UpdateLastLogout(ctx, email, logoutTime); err != nil {
		log.Err(err).Str("email", email).Msg("failed to update last logout time")
		return fmt.Errorf("failed to update last logout time: %w", err)
	}

	return nil
}

// GetUser returns the account identified by email.
func (a *authService) GetUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the account email as the subject, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
