package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/todoaskit/modelpresets/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "preset",
			Name:     "SMALL_FC_MNIST",
		}
		assert.Equal(t, "preset SMALL_FC_MNIST not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("template", "ALEXNET_VARIANT")
		assert.Equal(t, "template ALEXNET_VARIANT not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("preset", "missing")
		wrapped := errors.Join(errors.New("lookup failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestDuplicateKeyError(t *testing.T) {
	err := pkgerrors.NewDuplicateKeyError("SMALL_FC_MNIST")
	assert.Equal(t, "duplicate catalog key SMALL_FC_MNIST", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrDuplicateKey))
	assert.True(t, pkgerrors.IsDuplicateKey(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestUnknownBaseError(t *testing.T) {
	err := pkgerrors.NewUnknownBaseError("ALEXNETV_CIFAR10", "NO_SUCH_BASE")
	assert.Equal(t, "preset ALEXNETV_CIFAR10 references unknown base NO_SUCH_BASE", err.Error())
	assert.True(t, pkgerrors.IsUnknownBase(err))
}

func TestMalformedEntryError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewMalformedEntryError("SMALL_FC_MNIST", "n_classes", "expected integer, got string")
		assert.Equal(t, "malformed entry SMALL_FC_MNIST: field n_classes: expected integer, got string", err.Error())
		assert.True(t, pkgerrors.IsMalformedEntry(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := pkgerrors.NewMalformedEntryError("SMALL_FC_MNIST", "", "entry is not a mapping")
		assert.Equal(t, "malformed entry SMALL_FC_MNIST: entry is not a mapping", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrMalformedEntry))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Preset:  "ALEXNETV_CIFAR100",
			Field:   "keep_prob",
			Message: "must be in (0, 1]",
		}
		assert.Equal(t, "preset ALEXNETV_CIFAR100: validation failed for field keep_prob: must be in (0, 1]", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("ALEXNETV_CIFAR100", "", "schema violations found")
		assert.Equal(t, "preset ALEXNETV_CIFAR100: validation failed: schema violations found", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestParseError(t *testing.T) {
	base := errors.New("unexpected node")
	err := pkgerrors.WrapParse("yaml", "presets.yaml", base)
	assert.Contains(t, err.Error(), "presets.yaml")
	assert.True(t, errors.Is(err, base))

	assert.Nil(t, pkgerrors.WrapParse("yaml", "presets.yaml", nil))
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("read", "/etc/presets.yaml", base)
	assert.Contains(t, err.Error(), "read")
	assert.Contains(t, err.Error(), "/etc/presets.yaml")
	assert.True(t, errors.Is(err, base))

	assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
}

func TestResourceError(t *testing.T) {
	base := pkgerrors.NewDuplicateKeyError("SMALL_FC_MNIST")
	err := pkgerrors.WrapResource("load", "catalog", "", base)
	assert.Contains(t, err.Error(), "failed to load catalog")

	// Wrapping preserves errors.Is chains down to the sentinel.
	assert.True(t, pkgerrors.IsDuplicateKey(err))

	assert.Nil(t, pkgerrors.WrapResource("load", "catalog", "", nil))
}
