package repository

import (
	"errors"
	"petcare/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports a unique violation, optionally restricted to one constraint.
func IsUniqueViolation(err error, constraint string) bool {
	return isPqError(err, constant.PqErrorCodeUniqueViolation, constraint)
}

// IsForeignKeyViolation reports a foreign key violation, optionally restricted to one constraint.
func IsForeignKeyViolation(err error, constraint string) bool {
	return isPqError(err, constant.PqErrorCodeFkViolation, constraint)
}

func isPqError(err error, code, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	if string(pqErr.Code) != code {
		return false
	}

	return constraint == "" || pqErr.Constraint == constraint
}
