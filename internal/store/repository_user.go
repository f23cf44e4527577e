package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and login/logout timestamping against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (UserID, sentinel timestamps).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.RelativeName, user.RelativeNumber, user.Telephone, user.RelativeEmail,
		user.ProfilePicture,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyRegistered
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.User
	if err := scanUser(row, &saved); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return saved, nil
}

// FindUserByEmail retrieves the account whose email matches the argument.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.User
	if err := scanUser(row, &found); err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// UpdateLastLogin overwrites the last_login column of the account.
// Zero affected rows means the account does not exist.
func (r *userRepository) UpdateLastLogin(ctx context.Context, email string, at string) error {
	return r.updateTimestamp(ctx, updateLastLogin, "*userRepository.UpdateLastLogin", email, at)
}

// UpdateLastLogout overwrites the last_logout column of the account.
// Zero affected rows means the account does not exist.
func (r *userRepository) UpdateLastLogout(ctx context.Context, email string, at string) error {
	return r.updateTimestamp(ctx, updateLastLogout, "*userRepository.UpdateLastLogout", email, at)
}

func (r *userRepository) updateTimestamp(ctx context.Context, query, fn, email, at string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, email, at)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: rows affected unavailable")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// rowScanner abstracts *sql.Row / *sql.Rows so the same scan order is used
// for single- and multi-row reads.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, u *models.User) error {
	return row.Scan(
		&u.UserID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.RelativeName, &u.RelativeNumber, &u.Telephone, &u.RelativeEmail,
		&u.ProfilePicture, &u.LastLogin, &u.LastLogout,
	)
}
