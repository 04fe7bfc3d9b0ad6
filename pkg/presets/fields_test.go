package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	base := Fields{"conv1_filters": 128, "conv1_size": 5, "keep_prob": 0.9}
	override := Fields{"conv1_filters": 196, "n_classes": 100}

	merged := Merge(base, override)

	assert.Equal(t, Fields{
		"conv1_filters": 196, // override wins on collision
		"conv1_size":    5,   // inherited from base
		"keep_prob":     0.9,
		"n_classes":     100,
	}, merged)

	// Neither input is mutated.
	assert.Equal(t, 128, base["conv1_filters"])
	assert.NotContains(t, base, "n_classes")
	assert.NotContains(t, override, "conv1_size")
}

func TestMergeEmpty(t *testing.T) {
	own := Fields{"dims0": 784}
	assert.Equal(t, own, Merge(nil, own))
	assert.Equal(t, own, Merge(own, nil))
	assert.Empty(t, Merge(nil, nil))
}

func TestFieldsCopy(t *testing.T) {
	orig := Fields{"dims0": 784}
	cp := orig.Copy()
	cp["dims0"] = 1

	assert.Equal(t, 784, orig["dims0"])
}

func TestToInt(t *testing.T) {
	for _, v := range []any{int(7), int64(7), uint64(7), int32(7)} {
		n, ok := toInt(v)
		assert.True(t, ok)
		assert.Equal(t, 7, n)
	}

	for _, v := range []any{7.5, "7", true, nil} {
		_, ok := toInt(v)
		assert.False(t, ok, "%T should not coerce to int", v)
	}
}

func TestToFloat(t *testing.T) {
	f, ok := toFloat(0.9)
	assert.True(t, ok)
	assert.InDelta(t, 0.9, f, 1e-9)

	f, ok = toFloat(uint64(1))
	assert.True(t, ok)
	assert.InDelta(t, 1.0, f, 1e-9)

	_, ok = toFloat("0.9")
	assert.False(t, ok)
}

func TestParseStageField(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		index  int
		attr   string
		ok     bool
	}{
		{"conv2_filters", "conv", 2, "filters", true},
		{"conv0_size", "conv", 0, "size", true},
		{"pool1_ksize", "pool", 1, "ksize", true},
		{"fc3", "fc", 3, "", true},
		{"dims0", "dims", 0, "", true},
		{"dims12", "dims", 12, "", true},
		{"n_classes", "", 0, "", false},
		{"one_step_filters", "", 0, "", false},
		{"keep_prob", "", 0, "", false},
		{"convx_filters", "", 0, "", false},
		{"conv", "", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, ok := parseStageField(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.prefix, sf.Prefix)
				assert.Equal(t, tt.index, sf.Index)
				assert.Equal(t, tt.attr, sf.Attr)
			}
		})
	}
}
