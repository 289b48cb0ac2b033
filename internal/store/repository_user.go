package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles owner profile creation and refresh against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertUser creates the profile on first sight and refreshes display
// attributes plus last-login time on every subsequent call. The original
// created_at is preserved by the merge.
//
// The statement is executed without a RETURNING clause so it works
// identically on PostgreSQL and SQLite; the stored record is read back with
// a follow-up SELECT.
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertUserQuery(r.DB.builder, user)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.UpsertUser").
			Str("uid", user.UID).
			Msg("failed to build upsert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "userRepository.UpsertUser").
			Str("uid", user.UID).
			Str("classification", r.DB.errorClassificator.Classify(execErr).String()).
			Msg("failed to upsert user profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	// read back the stored record
	selectQuery, selectArgs, err := buildGetUserQuery(r.DB.builder, user.UID)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.UpsertUser").
			Str("uid", user.UID).
			Msg("failed to build select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var storedUser models.User
	row := r.DB.QueryRowContext(ctx, selectQuery, selectArgs...)
	scanErr := row.Scan(
		&storedUser.UID,
		&storedUser.Email,
		&storedUser.Name,
		&storedUser.Picture,
		&storedUser.CreatedAt,
		&storedUser.LastLoginAt,
	)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "userRepository.UpsertUser").
			Str("uid", user.UID).
			Msg("failed to scan stored user profile")

		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.User{}, ErrUserNotSaved
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return storedUser, nil
}
