//go:build unit

package pgconv_test

import (
	"database/sql"
	"math/big"
	"testing"

	"purchase-approval/internal/pkg/pgconv"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1050", "0.01", "12345678901.99", "-3.5"} {
		t.Run(s, func(t *testing.T) {
			in := decimal.RequireFromString(s)

			out, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(in))
			require.NoError(t, err)
			assert.True(t, in.Equal(out), "want %s, got %s", in, out)
		})
	}
}

func TestDecimalFromNumeric(t *testing.T) {
	t.Run("scaled integer", func(t *testing.T) {
		d, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(105000), Exp: -2, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "1050", d.String())
	})

	t.Run("null", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		assert.ErrorIs(t, err, pgconv.ErrNullNumeric)
	})

	t.Run("nan", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
	})

	t.Run("infinity", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
	})
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errors.Wrap(pgx.ErrNoRows, "select")))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))
}
