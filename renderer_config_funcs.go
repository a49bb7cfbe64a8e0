package helpfmt

import (
	"maps"
	"slices"
)

// WithColumnWidth sets the width of the left help column. Negative values are treated as 0.
func WithColumnWidth(width int) ConfigureRendererFunc {
	return func(r *Renderer) {
		if width < 0 {
			width = 0
		}
		r.columnWidth = width
	}
}

// WithLabel overrides a single label
func WithLabel(key, value string) ConfigureRendererFunc {
	return func(r *Renderer) {
		r.labels.Set(key, value)
	}
}

// WithLabels overrides several labels at once. Keys not yet in the table are appended in sorted
// order.
func WithLabels(labels map[string]string) ConfigureRendererFunc {
	return func(r *Renderer) {
		for _, k := range slices.Sorted(maps.Keys(labels)) {
			r.labels.Set(k, labels[k])
		}
	}
}

// WithLabelTable replaces the label table. The renderer keeps a copy so later changes to
// labels do not leak into it.
func WithLabelTable(labels *Labels) ConfigureRendererFunc {
	return func(r *Renderer) {
		if labels != nil {
			r.labels = labels.Clone()
		}
	}
}

// WithOptionFormatter replaces the option formatter
func WithOptionFormatter(f OptionFormatter) ConfigureRendererFunc {
	return func(r *Renderer) {
		r.SetOptionFormatter(f)
	}
}

// WithCommandFormatter replaces the command formatter
func WithCommandFormatter(f CommandFormatter) ConfigureRendererFunc {
	return func(r *Renderer) {
		r.SetCommandFormatter(f)
	}
}
