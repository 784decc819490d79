package validator

import (
	"testing"

	domainerrors "bootcamper/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type radiusParams struct {
	Zipcode  string  `param:"zipcode" json:"zipcode" validate:"required"`
	Distance float64 `param:"distance" json:"distance" validate:"gte=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&radiusParams{Zipcode: "02118", Distance: 10}))

	err := v.Validate(&radiusParams{Distance: -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "zipcode: is required")
	assert.Contains(t, err.Error(), "distance: must be greater than or equal to 0")
}
