package employee

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	employeeerrors "go-payroll/internal/employee/errors"
)

// mapRepositoryError translates driver errors into the sentinels the
// handler layer knows. The only expected unique index is on
// (organization_id, personnel_id).
func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case isUniqueViolation(err):
		return employeeerrors.ErrPersonnelIDTaken
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// Non-postgres drivers in tests surface the message only.
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}
