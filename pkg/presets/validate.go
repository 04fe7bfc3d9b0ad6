package presets

import (
	"fmt"
	"sort"
)

// Violation describes one failed schema check on a resolved preset.
// Validation reports every violation rather than stopping at the first,
// so callers can surface all problems at once.
type Violation struct {
	Field   string
	Message string
}

// String implements fmt.Stringer.
func (v Violation) String() string {
	if v.Field == "" {
		return v.Message
	}
	return v.Field + ": " + v.Message
}

// Validate checks one resolved preset against the schema and returns
// the set of violations, empty when valid.
//
// Checks: required fields present; numeric fields are positive
// integers; keep_prob lies in (0, 1]; stage indices are contiguous
// starting at 0; n_classes equals the final declared layer width; and
// mtype matches the catalog key.
func Validate(p *Preset) []Violation {
	var out []Violation

	for _, key := range requiredFields {
		if !p.fields.Has(key) {
			out = append(out, Violation{Field: key, Message: "required field is missing"})
		}
	}

	if mtype, ok := p.fields.String("mtype"); ok && mtype != p.name {
		out = append(out, Violation{
			Field:   "mtype",
			Message: fmt.Sprintf("must equal the catalog key %s, got %s", p.name, mtype),
		})
	}

	out = append(out, validateNumeric(p)...)
	out = append(out, validateStages(p)...)
	out = append(out, validateOutputWidth(p)...)

	return out
}

// positiveIntFields are the non-stage fields that must hold positive
// integers when present.
var positiveIntFields = []string{"n_classes", "one_step_neurons", "one_step_filters"}

func validateNumeric(p *Preset) []Violation {
	var out []Violation

	for _, key := range positiveIntFields {
		if !p.fields.Has(key) {
			continue
		}
		if n, ok := p.fields.Int(key); !ok || n <= 0 {
			out = append(out, Violation{Field: key, Message: "must be a positive integer"})
		}
	}

	if p.fields.Has("keep_prob") {
		kp, ok := p.fields.Float("keep_prob")
		if !ok || kp <= 0 || kp > 1 {
			out = append(out, Violation{Field: "keep_prob", Message: "must be in (0, 1]"})
		}
	}

	return out
}

// validateStages checks that every stage-indexed field holds a positive
// integer, that stage indices are contiguous starting at 0, and that
// convolutional stages declare both a filter count and a kernel size.
func validateStages(p *Preset) []Violation {
	var out []Violation

	// Collect stage indices per (prefix, attr) pair.
	indices := make(map[string][]int)
	for name := range p.fields {
		sf, ok := parseStageField(name)
		if !ok {
			continue
		}

		if n, ok := p.fields.Int(name); !ok || n <= 0 {
			out = append(out, Violation{Field: name, Message: "must be a positive integer"})
		}

		group := sf.Prefix
		if sf.Attr != "" {
			group += "_" + sf.Attr
		}
		indices[group] = append(indices[group], sf.Index)
	}

	groups := make([]string, 0, len(indices))
	for group := range indices {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		idxs := indices[group]
		sort.Ints(idxs)
		for want, got := range idxs {
			if got != want {
				out = append(out, Violation{
					Field:   group,
					Message: fmt.Sprintf("stage indices must be contiguous starting at 0, missing index %d", want),
				})
				break
			}
		}
	}

	// Each conv stage needs both attributes.
	if len(indices["conv_filters"]) != len(indices["conv_size"]) {
		out = append(out, Violation{
			Field:   "conv",
			Message: "every convolutional stage must declare both filters and size",
		})
	}

	return out
}

// validateOutputWidth checks the cross-field invariant: n_classes must
// equal the width of the final declared layer.
func validateOutputWidth(p *Preset) []Violation {
	n, ok := p.fields.Int("n_classes")
	if !ok {
		return nil // missing or malformed n_classes is reported elsewhere
	}

	width, ok := p.OutputWidth()
	if !ok {
		return []Violation{{
			Field:   "n_classes",
			Message: "preset declares no output layer to match n_classes against",
		}}
	}

	if width != n {
		field := "dims"
		if p.Family() == FamilyConv {
			field = "fc"
		}
		return []Violation{{
			Field:   field,
			Message: fmt.Sprintf("final layer width %d does not equal n_classes %d", width, n),
		}}
	}

	return nil
}
