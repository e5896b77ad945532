package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"highscore-backend/internal/models"

	"github.com/glebarez/go-sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	sqliteConstraint = 19
	sqliteCantOpen   = 14
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// validateInput enforces the NOT NULL columns of a write model before any
// statement is sent.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		names := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			names = append(names, fe.Field())
		}
		return fmt.Errorf("%w: missing required field(s) %s", models.ErrConstraintViolation, strings.Join(names, ", "))
	}
	return fmt.Errorf("%w: %w", models.ErrConstraintViolation, err)
}

// translateError maps driver and GORM errors onto the models error
// sentinels. Errors it does not recognise are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, models.ErrConstraintViolation) ||
		errors.Is(err, models.ErrTypeCoercion) ||
		errors.Is(err, models.ErrStoreUnavailable) {
		return err
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %w", models.ErrConstraintViolation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return fmt.Errorf("%w: %w", models.ErrConstraintViolation, err)
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
		}
		return err
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqliteConstraint:
			return fmt.Errorf("%w: %w", models.ErrConstraintViolation, err)
		case sqliteCantOpen:
			return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
		}
		return err
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", models.ErrStoreUnavailable, err)
	}

	return err
}

func releaseYear(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006")
}

func genreOrDefault(genre *string) string {
	if genre == nil || *genre == "" {
		return models.NoGenre
	}
	return *genre
}

// likePattern builds a case-folded substring pattern for LIKE ... ESCAPE '\'.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}
