package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"ads-manager/internal/core/domain"
)

func TestAssignments(t *testing.T) {
	set := newAssignments("id-1")
	assert.True(t, set.empty())

	set.set("name", "Launch")
	set.set("stop_time", int64(42))

	assert.False(t, set.empty())
	assert.Equal(t, "name = $2, stop_time = $3", set.clause())
	assert.Equal(t, []any{"id-1", "Launch", int64(42)}, set.args)
}

func TestTranslate(t *testing.T) {
	fk := &pgconn.PgError{Code: codeForeignKeyViolation}
	err := translate(fk, "campaign")
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	assert.Equal(t, "campaign not found", err.Error())

	check := &pgconn.PgError{Code: codeCheckViolation, ConstraintName: "adsets_daily_budget_check"}
	assert.ErrorIs(t, translate(check, "campaign"), domain.ErrValidation)

	other := errors.New("conn refused")
	assert.Same(t, other, translate(other, "campaign"))
}
