package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Credential
// material is never logged.
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

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique violation (Postgres 23505, SQLite UNIQUE) → [ErrEmailAlreadyExists].
//   - any other driver-level error → [ErrExecutingQuery].
//   - scan failure → [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	created, err := r.queryOne(ctx, "*userRepository.CreateUser", query, args)
	if errors.Is(err, ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("%w: insert returned no row", ErrExecutingQuery)
	}

	return created, err
}

// FindUserByEmail retrieves the first user whose lowercased email equals the
// lowercased argument.
//
// An empty email is a valid input; it matches no row.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound].
//   - any other failure → [ErrExecutingQuery] / [ErrScanningRow].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserByEmailQuery(r.db.builder(), email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, err
	}

	return r.queryOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID retrieves the user with the given identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(r.db.builder(), userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, err
	}

	return r.queryOne(ctx, "*userRepository.FindUserByID", query, args)
}

// queryOne runs query and scans the first returned row. Further rows are
// ignored. No row → [ErrNoUserWasFound].
func (r *userRepository) queryOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("func", funcName).Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", funcName).Str("class", r.db.Classify(err).String()).Msg("error executing query")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			if isUniqueViolation(err) {
				log.Debug().Str("func", funcName).Msg("email already exists")
				return models.User{}, ErrEmailAlreadyExists
			}

			log.Err(err).Str("func", funcName).Msg("error iterating rows")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return models.User{}, ErrNoUserWasFound
	}

	user, err := scanUser(rows)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
