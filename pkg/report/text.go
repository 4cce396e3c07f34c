package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/faraday/borgelt/pkg/tract"
)

// TextWriter is a Reporter that writes one line per reported pattern to w,
// items joined by sep, followed by the support in parentheses — a reduced,
// fixed-format stand-in for sequoia.c's isr_setfmtx hdr/sep output
// options, which this repository does not attempt to reproduce in full
// (pattern-spectrum file writing and custom output formats are out of
// scope per spec.md §1).
type TextWriter struct {
	w     io.Writer
	names []string // optional; nil means print bare integer ids
	sep   string
	stack []stackEntry
	lengthFilter
}

// NewTextWriter returns a TextWriter with no length filtering. names may
// be nil, in which case items print as their integer id.
func NewTextWriter(w io.Writer, names []string) *TextWriter {
	return NewBoundedTextWriter(w, names, 0, -1)
}

// NewBoundedTextWriter is the length-filtered counterpart of NewTextWriter.
func NewBoundedTextWriter(w io.Writer, names []string, minLen, maxLen int) *TextWriter {
	return &TextWriter{w: w, names: names, sep: " ", lengthFilter: lengthFilter{minLen: minLen, maxLen: maxLen}}
}

func (t *TextWriter) label(it tract.Item) string {
	if t.names != nil && int(it) < len(t.names) {
		return t.names[it]
	}
	return strconv.Itoa(int(it))
}

func (t *TextWriter) writeLine(items []tract.Item, supp tract.Support) error {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = t.label(it)
	}
	_, err := fmt.Fprintf(t.w, "%s (%d)\n", strings.Join(labels, t.sep), supp)
	return err
}

func (t *TextWriter) Add(item tract.Item, supp tract.Support) error {
	t.stack = append(t.stack, stackEntry{item: item, supp: supp})
	return nil
}

func (t *TextWriter) Report() error {
	if !t.allows(len(t.stack)) {
		return nil
	}
	items := make([]tract.Item, len(t.stack))
	for i, e := range t.stack {
		items[i] = e.item
	}
	supp := t.stack[len(t.stack)-1].supp
	return t.writeLine(items, supp)
}

func (t *TextWriter) Remove(k int) error {
	t.stack = t.stack[:k]
	return nil
}

func (t *TextWriter) EmitEmpty(support tract.Support) error {
	if !t.allows(0) {
		return nil
	}
	return t.writeLine(nil, support)
}

// WeightedTextWriter is the item-weighted counterpart of TextWriter,
// implementing ItemsetReporter: each line additionally lists the mean
// weight of every prefix item, in the same order.
type WeightedTextWriter struct {
	w     io.Writer
	names []string
	sep   string
	lengthFilter
}

// NewWeightedTextWriter returns a WeightedTextWriter with no length
// filtering.
func NewWeightedTextWriter(w io.Writer, names []string) *WeightedTextWriter {
	return NewBoundedWeightedTextWriter(w, names, 0, -1)
}

// NewBoundedWeightedTextWriter is the length-filtered counterpart of
// NewWeightedTextWriter.
func NewBoundedWeightedTextWriter(w io.Writer, names []string, minLen, maxLen int) *WeightedTextWriter {
	return &WeightedTextWriter{w: w, names: names, sep: " ", lengthFilter: lengthFilter{minLen: minLen, maxLen: maxLen}}
}

func (t *WeightedTextWriter) label(it tract.Item) string {
	if t.names != nil && int(it) < len(t.names) {
		return t.names[it]
	}
	return strconv.Itoa(int(it))
}

func (t *WeightedTextWriter) EmitItemset(prefix []tract.Item, wgtSums []float64, supp tract.Support) error {
	if !t.allows(len(prefix)) {
		return nil
	}
	labels := make([]string, len(prefix))
	means := make([]string, len(wgtSums))
	for i, it := range prefix {
		labels[i] = t.label(it)
	}
	for i, s := range wgtSums {
		means[i] = strconv.FormatFloat(s/float64(supp), 'f', 2, 64)
	}
	_, err := fmt.Fprintf(t.w, "%s (%d) %s\n", strings.Join(labels, t.sep), supp, strings.Join(means, t.sep))
	return err
}

func (t *WeightedTextWriter) EmitEmpty(support tract.Support) error {
	if !t.allows(0) {
		return nil
	}
	_, err := fmt.Fprintf(t.w, "(%d)\n", support)
	return err
}
