package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/boardgame-api/internal/store"
)

// SQLSTATE codes with a store-level meaning.
const (
	invalidTextRepresentationCode = "22P02" // malformed uuid literal
	undefinedTableCode            = "42P01"
)

// MapError attaches the matching store sentinel to a driver error, keeping
// the original in the chain.
func MapError(err error) error {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return errors.Join(store.ErrNotFound, err)
	case !errors.As(err, &pgErr):
		return err
	case pgErr.Code == invalidTextRepresentationCode:
		return errors.Join(store.ErrInvalidID, err)
	case pgErr.Code == undefinedTableCode:
		return fmt.Errorf("documents table missing, run migrations: %w", err)
	default:
		return err
	}
}
