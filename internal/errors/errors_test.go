package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spellscribe/spells-api/internal/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.NotFound("spell not found")
	assert.Equal(t, "NOT_FOUND: spell not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to fetch spell list")
	assert.Equal(t, "INTERNAL: failed to fetch spell list: dial tcp: refused", wrapped.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	base := errors.Unavailablef("source returned status %d", 502)
	wrapped := errors.Wrap(base, "registry refresh failed")

	assert.True(t, errors.IsUnavailable(wrapped))
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(wrapped))
	assert.ErrorIs(t, wrapped, base)
}

func TestWrapWithCode(t *testing.T) {
	cause := fmt.Errorf("UNIQUE constraint failed")
	err := errors.WrapWithCode(cause, errors.CodeAlreadyExists, "extended info already created")

	assert.True(t, errors.IsAlreadyExists(err))
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func TestGetCodeFallsBackToInternal(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
}

func TestTypeCheckHelpers(t *testing.T) {
	assert.True(t, errors.IsNotFound(errors.NotFoundf("class %d not found", 42)))
	assert.True(t, errors.IsFailedPrecondition(errors.FailedPrecondition("dangling school id")))
	assert.True(t, errors.IsRenderFailed(errors.RenderFailed("no image url in response")))
	assert.False(t, errors.IsNotFound(errors.Internal("boom")))
}

func TestMeta(t *testing.T) {
	err := errors.NotFound("spell not found").WithMeta("alias", "fireball")
	assert.Equal(t, "fireball", err.Meta["alias"])
}

func TestValidationBuilder(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())

	errors.ValidateRequired("alias", "  ", vb)
	vb.Fieldf("level", "must be between %d and %d", 0, 9)

	err := vb.Build()
	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "alias: is required")
	assert.Contains(t, err.Error(), "level: must be between 0 and 9")
}
