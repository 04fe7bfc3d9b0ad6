package presets

import (
	"fmt"
	"sort"
	"strings"
)

// Family classifies a preset by the shape of its architecture fields.
type Family string

const (
	// FamilyFC is the fully-connected family (dims0..dimsN layer widths).
	FamilyFC Family = "fc"
	// FamilyConv is the convolutional family (conv/pool stages plus FC head).
	FamilyConv Family = "conv"
	// FamilyUnknown is a preset with no recognized architecture fields.
	FamilyUnknown Family = "unknown"
)

// Preset is a named, fully-resolved set of architecture hyperparameters
// for one model/dataset combination. Presets are immutable after load;
// accessors return copies.
type Preset struct {
	name     string
	template bool
	fields   Fields
}

// Name returns the catalog key of the preset.
func (p *Preset) Name() string {
	return p.name
}

// IsTemplate reports whether this entry is a pure base template rather
// than a full preset. Templates are merge sources and are not required
// to satisfy the full preset schema.
func (p *Preset) IsTemplate() bool {
	return p.template
}

// Fields returns a copy of the resolved flat field mapping.
func (p *Preset) Fields() Fields {
	return p.fields.Copy()
}

// Field returns a single raw field value.
func (p *Preset) Field(name string) (any, bool) {
	v, ok := p.fields[name]
	return v, ok
}

// MType returns the model identifier. By convention it equals the
// catalog key.
func (p *Preset) MType() string {
	s, _ := p.fields.String("mtype")
	return s
}

// DType returns the dataset identifier (e.g. MNIST, CIFAR10).
func (p *Preset) DType() string {
	s, _ := p.fields.String("dtype")
	return s
}

// NClasses returns the number of output classes.
func (p *Preset) NClasses() int {
	n, _ := p.fields.Int("n_classes")
	return n
}

// Family classifies the preset as fully-connected or convolutional.
func (p *Preset) Family() Family {
	for name := range p.fields {
		sf, ok := parseStageField(name)
		if !ok {
			continue
		}
		if sf.Prefix == "conv" {
			return FamilyConv
		}
	}
	for name := range p.fields {
		if sf, ok := parseStageField(name); ok && sf.Prefix == "dims" {
			return FamilyFC
		}
	}
	return FamilyUnknown
}

// Dims returns the fully-connected layer widths in stage order.
func (p *Preset) Dims() []int {
	return p.stageValues("dims", "")
}

// ConvFilters returns the filter count of each convolutional stage in order.
func (p *Preset) ConvFilters() []int {
	return p.stageValues("conv", "filters")
}

// ConvSizes returns the kernel size of each convolutional stage in order.
func (p *Preset) ConvSizes() []int {
	return p.stageValues("conv", "size")
}

// PoolSizes returns the kernel size of each pooling stage in order.
func (p *Preset) PoolSizes() []int {
	return p.stageValues("pool", "ksize")
}

// FCWidths returns the width of each fully-connected stage in order.
// For the convolutional family the last entry is the output layer.
func (p *Preset) FCWidths() []int {
	return p.stageValues("fc", "")
}

// OutputWidth returns the width of the final declared layer: fc{max}
// for the convolutional family, dims{max} for the fully-connected one.
// The second return is false when the preset declares neither.
func (p *Preset) OutputWidth() (int, bool) {
	switch p.Family() {
	case FamilyConv:
		widths := p.FCWidths()
		if len(widths) == 0 {
			return 0, false
		}
		return widths[len(widths)-1], true
	case FamilyFC:
		dims := p.Dims()
		if len(dims) == 0 {
			return 0, false
		}
		return dims[len(dims)-1], true
	default:
		return 0, false
	}
}

// OneStepNeurons returns the incremental neuron growth step, if declared.
func (p *Preset) OneStepNeurons() (int, bool) {
	return p.fields.Int("one_step_neurons")
}

// OneStepFilters returns the incremental filter growth step, if declared.
func (p *Preset) OneStepFilters() (int, bool) {
	return p.fields.Int("one_step_filters")
}

// KeepProb returns the dropout keep probability, if declared.
func (p *Preset) KeepProb() (float64, bool) {
	return p.fields.Float("keep_prob")
}

// DropoutType returns the dropout variant name, if declared.
func (p *Preset) DropoutType() (string, bool) {
	return p.fields.String("dropout_type")
}

// UseBatchNorm reports whether batch normalization is enabled.
func (p *Preset) UseBatchNorm() bool {
	b, _ := p.fields.Bool("use_batch_normalization")
	return b
}

// stageValues collects the values of every stage-indexed field with the
// given prefix and attribute, ordered by stage index.
func (p *Preset) stageValues(prefix, attr string) []int {
	type entry struct {
		idx int
		val int
	}
	var entries []entry
	for name, raw := range p.fields {
		sf, ok := parseStageField(name)
		if !ok || sf.Prefix != prefix || sf.Attr != attr {
			continue
		}
		v, ok := toInt(raw)
		if !ok {
			continue
		}
		entries = append(entries, entry{idx: sf.Index, val: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })

	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.val
	}
	return out
}

// Format renders the preset as sorted "key: value" lines, one field per
// line. Useful for config logs and plain-text CLI output.
func (p *Preset) Format() string {
	keys := make([]string, 0, len(p.fields))
	for k := range p.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, p.fields[k])
	}
	return b.String()
}
