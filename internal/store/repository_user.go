package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation, credential lookup and profile updates against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
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

// CreateUser persists a new user record and returns the database-assigned id.
//
// Error handling:
//   - UNIQUE violation on users.email → [ErrDuplicateEmail].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, name, email, password, birthDate string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, createUser, name, email, password, birthDate)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("email", email).
			Msg("failed to insert user")

		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Msg("failed to obtain inserted user id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return userID, nil
}

// FindByCredentials retrieves the user whose email and password exactly match
// the provided values.
//
// "Not found" is a soft condition: the method returns (nil, nil) so that the
// caller can distinguish a failed login attempt from a storage failure.
func (r *userRepository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByCredentials, email, password)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "*userRepository.FindByCredentials").
			Str("email", email).
			Msg("failed to scan user row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindByID retrieves a user by id, returning (nil, nil) when absent.
func (r *userRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "*userRepository.FindByID").
			Int64("user_id", userID).
			Msg("failed to scan user row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateName sets the user's display name. The returned bool reports whether
// a row actually changed, so the caller can distinguish "nothing matched"
// from "operation failed".
func (r *userRepository) UpdateName(ctx context.Context, userID int64, name string) (bool, error) {
	return r.execChanged(ctx, "*userRepository.UpdateName", updateUserName, name, userID)
}

// UpdateProfileImage sets the user's profile image reference.
func (r *userRepository) UpdateProfileImage(ctx context.Context, userID int64, imageRef string) (bool, error) {
	return r.execChanged(ctx, "*userRepository.UpdateProfileImage", updateUserProfileImage, imageRef, userID)
}

// ProfileImage returns the user's profile image reference. Nil means the
// user either has no image set or does not exist.
func (r *userRepository) ProfileImage(ctx context.Context, userID int64) (*string, error) {
	log := logger.FromContext(ctx)

	var imageRef *string
	err := r.db.QueryRowContext(ctx, getUserProfileImage, userID).Scan(&imageRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "*userRepository.ProfileImage").
			Int64("user_id", userID).
			Msg("failed to scan profile image")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return imageRef, nil
}

// execChanged runs a single UPDATE statement and reports whether any row
// was affected.
func (r *userRepository) execChanged(ctx context.Context, funcName, query string, args ...any) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to execute update statement")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// scanUser reads one users row into a [models.User].
func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User

	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.BirthDate,
		&user.ProfileImage,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
