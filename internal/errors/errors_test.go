package errors_test

import (
	stderrors "errors"
	"testing"

	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := apperr.FailedPrecondition("ability has no owner").WithMeta("ability", "Leash")

	wrapped := apperr.Wrap(base, "activation aborted")

	assert.True(t, apperr.IsFailedPrecondition(wrapped))
	assert.Equal(t, "activation aborted: ability has no owner", wrapped.Error())
	assert.Equal(t, "Leash", apperr.GetMeta(wrapped)["ability"])
	assert.ErrorIs(t, wrapped, base)
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := apperr.Wrap(stderrors.New("boom"), "store failed")

	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(wrapped))
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := apperr.WrapWithCode(stderrors.New("dial tcp"), apperr.CodeUnavailable, "redis unreachable")

	assert.Equal(t, apperr.CodeUnavailable, apperr.GetCode(wrapped))
	assert.False(t, apperr.IsNotFound(wrapped))
}

func TestHelpers(t *testing.T) {
	assert.True(t, apperr.IsInvalidArgument(apperr.InvalidArgumentf("slot %d", 7)))
	assert.True(t, apperr.IsNotFound(apperr.NotFoundf("match %s", "m1")))
	assert.True(t, apperr.IsValidation(apperr.Validationf("magnitude %.1f", 1.5)))
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(stderrors.New("plain")))
}
