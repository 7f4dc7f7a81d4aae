package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/edupath/internal/domain/repository"
)

func TestMapErr(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: repository.ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: repository.ErrNotFound},
		{name: "unique violation", in: &pgconn.PgError{Code: "23505"}, want: repository.ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErr(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapErrPassesThroughOtherErrors(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	got := mapErr(fk)
	assert.Same(t, fk, got)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapErr(other))
}
