package presets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoaskit/modelpresets/pkg/presets"
)

func mustPreset(t *testing.T, c *presets.Catalog, name string) *presets.Preset {
	t.Helper()
	p, err := c.Preset(name)
	require.NoError(t, err)
	return p
}

func TestFCAccessors(t *testing.T) {
	c, err := presets.NewEmbedded()
	require.NoError(t, err)

	p := mustPreset(t, c, "SMALL_FC_MNIST")
	assert.Equal(t, "SMALL_FC_MNIST", p.Name())
	assert.Equal(t, "SMALL_FC_MNIST", p.MType())
	assert.Equal(t, "MNIST", p.DType())
	assert.Equal(t, 10, p.NClasses())
	assert.Equal(t, presets.FamilyFC, p.Family())
	assert.Equal(t, []int{784, 150, 150, 10}, p.Dims())
	assert.Empty(t, p.ConvFilters())
	assert.False(t, p.IsTemplate())

	step, ok := p.OneStepNeurons()
	require.True(t, ok)
	assert.Equal(t, 15, step)

	width, ok := p.OutputWidth()
	require.True(t, ok)
	assert.Equal(t, 10, width)
}

func TestConvAccessors(t *testing.T) {
	c, err := presets.NewEmbedded()
	require.NoError(t, err)

	p := mustPreset(t, c, "ALEXNETV_MNIST")
	assert.Equal(t, presets.FamilyConv, p.Family())

	// conv0 comes from the preset itself, conv1..conv4 from its base.
	assert.Equal(t, []int{64, 128, 256, 384, 256}, p.ConvFilters())
	assert.Equal(t, []int{3, 5, 3, 3, 3}, p.ConvSizes())
	assert.Equal(t, []int{2, 2, 2}, p.PoolSizes())
	assert.Equal(t, []int{2048, 1024, 512, 10}, p.FCWidths())

	width, ok := p.OutputWidth()
	require.True(t, ok)
	assert.Equal(t, 10, width)

	keep, ok := p.KeepProb()
	require.True(t, ok)
	assert.InDelta(t, 0.9, keep, 1e-9)

	dropout, ok := p.DropoutType()
	require.True(t, ok)
	assert.Equal(t, "dropout", dropout)
	assert.False(t, p.UseBatchNorm())

	step, ok := p.OneStepFilters()
	require.True(t, ok)
	assert.Equal(t, 16, step)
}

func TestConvOverrideInDerived(t *testing.T) {
	c, err := presets.NewEmbedded()
	require.NoError(t, err)

	p := mustPreset(t, c, "ALEXNETV_CIFAR100")
	assert.Equal(t, []int{96, 196, 256, 384, 256}, p.ConvFilters())
	assert.Equal(t, 100, p.NClasses())
	assert.Equal(t, []int{2048, 1024, 512, 100}, p.FCWidths())
}

func TestFieldsReturnsCopy(t *testing.T) {
	c, err := presets.NewEmbedded()
	require.NoError(t, err)

	p := mustPreset(t, c, "SMALL_FC_MNIST")
	fields := p.Fields()
	fields["dims0"] = 1

	again := p.Fields()
	n, ok := again.Int("dims0")
	require.True(t, ok)
	assert.Equal(t, 784, n)
}

func TestTemplateAccessor(t *testing.T) {
	c, err := presets.NewEmbedded()
	require.NoError(t, err)

	tmpl, err := c.Template("ALEXNET_VARIANT")
	require.NoError(t, err)
	assert.True(t, tmpl.IsTemplate())
	assert.False(t, tmpl.Fields().Has("conv0_filters"))
	assert.False(t, tmpl.Fields().Has("n_classes"))
}

func TestFormat(t *testing.T) {
	c, err := presets.NewEmbedded()
	require.NoError(t, err)

	p := mustPreset(t, c, "SMALL_FC_MNIST")
	out := p.Format()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, len(p.Fields()))
	assert.Contains(t, lines, "dtype: MNIST")
	assert.Contains(t, lines, "n_classes: 10")

	// Lines are sorted by key.
	for i := 1; i < len(lines); i++ {
		assert.Less(t, lines[i-1], lines[i])
	}
}
