// Package record couples the nucleotide and the amino acid
// representation of a molecule in a single dual-representation
// record and keeps the two consistent through slicing, padding and
// domain switches.
package record

import (
	"errors"
	"fmt"

	"github.com/gonum/matrix/mat64"

	"github.com/seqlab/seqview/bio"
	"github.com/seqlab/seqview/gencode"
	"github.com/seqlab/seqview/numeric"
)

// Metadata carries a record's identity and optional per-symbol
// annotation tracks. ID, Name and Description pass through every
// transformation verbatim. Annotation tracks are positional over the
// active view and are dropped by operations which change the active
// view's length or domain.
type Metadata struct {
	ID          string
	Name        string
	Description string
	Annotations map[string][]string
}

// clone returns a deep copy of the metadata.
func (m Metadata) clone() Metadata {
	c := m
	if m.Annotations != nil {
		c.Annotations = make(map[string][]string, len(m.Annotations))
		for k, vs := range m.Annotations {
			c.Annotations[k] = append([]string(nil), vs...)
		}
	}
	return c
}

// dropAnnotations returns a copy without per-symbol tracks.
func (m Metadata) dropAnnotations() Metadata {
	c := m
	c.Annotations = nil
	return c
}

// Record is a dual-representation sequence. One view is active; the
// counterpart view, when present, is kept consistent by the engine
// operations or dropped when an operation breaks the reading frame.
// Records are value types: every operation returns a new record.
type Record struct {
	active  bio.Domain
	nt, aa  bio.View
	hasNT   bool
	hasAA   bool
	dropped bool // counterpart invalidated by a frame-breaking operation
	gcode   *gencode.GeneticCode
	cmap    *gencode.CodonMap
	meta    Metadata
}

// FromView wraps a single validated view. The counterpart is absent
// until Activate derives it. The standard genetic code is preset; a
// codon map is not.
func FromView(v bio.View) Record {
	r := Record{active: v.Domain(), gcode: gencode.GeneticCodes[1]}
	return r.setView(v.Domain(), v)
}

// FromViews wraps both representations at once. The nucleotide view
// must be exactly three times as long as the amino acid view.
func FromViews(nt, aa bio.View, active bio.Domain) (Record, error) {
	if nt.Domain() != bio.NT || aa.Domain() != bio.AA {
		return Record{}, fmt.Errorf("paired views must be %s and %s, got %s and %s",
			bio.NT, bio.AA, nt.Domain(), aa.Domain())
	}
	if nt.Len() != 3*aa.Len() {
		return Record{}, &bio.LengthMismatchError{Op: "paired views", Want: 3 * aa.Len(), Got: nt.Len()}
	}
	r := Record{active: active, gcode: gencode.GeneticCodes[1]}
	r = r.setView(bio.NT, nt)
	r = r.setView(bio.AA, aa)
	return r, nil
}

// Restore rebuilds a record from previously stored views. Either view may be
// nil when it was never materialized; dropped marks a counterpart which was
// discarded by a frame-breaking edit and must not accompany two views.
func Restore(nt, aa *bio.View, active bio.Domain, dropped bool) (Record, error) {
	switch {
	case nt != nil && aa != nil:
		if dropped {
			return Record{}, errors.New("a dropped counterpart cannot be present")
		}
		return FromViews(*nt, *aa, active)
	case nt != nil:
		if active != bio.NT {
			return Record{}, fmt.Errorf("active domain is %s but only the %s view is present", active, bio.NT)
		}
		r := FromView(*nt)
		r.dropped = dropped
		return r, nil
	case aa != nil:
		if active != bio.AA {
			return Record{}, fmt.Errorf("active domain is %s but only the %s view is present", active, bio.AA)
		}
		r := FromView(*aa)
		r.dropped = dropped
		return r, nil
	default:
		return Record{}, errors.New("no views to restore")
	}
}

func (r Record) setView(d bio.Domain, v bio.View) Record {
	if d == bio.NT {
		r.nt, r.hasNT = v, true
	} else {
		r.aa, r.hasAA = v, true
	}
	return r
}

func (r Record) dropCounterpart() Record {
	if r.active == bio.NT {
		r.aa, r.hasAA = bio.View{}, false
	} else {
		r.nt, r.hasNT = bio.View{}, false
	}
	r.dropped = true
	return r
}

// Active returns the active domain.
func (r Record) Active() bio.Domain {
	return r.active
}

// View returns the active view.
func (r Record) View() bio.View {
	if r.active == bio.NT {
		return r.nt
	}
	return r.aa
}

// Len returns the active view's length.
func (r Record) Len() int {
	return r.View().Len()
}

// String returns the active view as text.
func (r Record) String() string {
	return r.View().String()
}

// NT returns the nucleotide view and whether it is present.
func (r Record) NT() (bio.View, bool) {
	return r.nt, r.hasNT
}

// AA returns the amino acid view and whether it is present.
func (r Record) AA() (bio.View, bool) {
	return r.aa, r.hasAA
}

// Counterpart returns the inactive view and whether it is present.
func (r Record) Counterpart() (bio.View, bool) {
	if r.active == bio.NT {
		return r.aa, r.hasAA
	}
	return r.nt, r.hasNT
}

// CounterpartDropped reports that the counterpart was invalidated by
// a frame-breaking operation, as opposed to never having been there.
func (r Record) CounterpartDropped() bool {
	return r.dropped
}

// Meta returns a deep copy of the record's metadata.
func (r Record) Meta() Metadata {
	return r.meta.clone()
}

// GeneticCode returns the bound translation table.
func (r Record) GeneticCode() *gencode.GeneticCode {
	return r.gcode
}

// CodonMap returns the bound codon map, nil when unbound.
func (r Record) CodonMap() *gencode.CodonMap {
	return r.cmap
}

// WithCodonMap binds a codon map for back-translation.
func (r Record) WithCodonMap(m *gencode.CodonMap) Record {
	r.cmap = m
	return r
}

// WithGeneticCode binds a translation table; nil keeps the current
// one.
func (r Record) WithGeneticCode(gc *gencode.GeneticCode) Record {
	if gc != nil {
		r.gcode = gc
	}
	return r
}

// WithID sets the metadata ID.
func (r Record) WithID(id string) Record {
	r.meta = r.meta.clone()
	r.meta.ID = id
	return r
}

// WithMeta replaces the record's metadata. Annotation tracks are
// length-checked against the active view.
func (r Record) WithMeta(m Metadata) (Record, error) {
	for name, vs := range m.Annotations {
		if len(vs) != r.Len() {
			return Record{}, &bio.LengthMismatchError{Op: fmt.Sprintf("annotation track %q", name), Want: r.Len(), Got: len(vs)}
		}
	}
	r.meta = m.clone()
	return r, nil
}

// WithAnnotation attaches one per-symbol annotation track to the
// active view.
func (r Record) WithAnnotation(name string, values []string) (Record, error) {
	if len(values) != r.Len() {
		return Record{}, &bio.LengthMismatchError{Op: fmt.Sprintf("annotation track %q", name), Want: r.Len(), Got: len(values)}
	}
	r.meta = r.meta.clone()
	if r.meta.Annotations == nil {
		r.meta.Annotations = make(map[string][]string, 1)
	}
	r.meta.Annotations[name] = append([]string(nil), values...)
	return r, nil
}

// OneHot encodes the active view as a one-hot matrix.
func (r Record) OneHot() *mat64.Dense {
	return numeric.OneHot(r.View())
}

// Indices encodes the active view as alphabet indices.
func (r Record) Indices() []int {
	return numeric.Index(r.View())
}

// Structured converts the record to its structured form carrying the
// active view's text and the metadata.
func (r Record) Structured() Structured {
	m := r.meta.clone()
	return Structured{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Seq:         r.String(),
		Annotations: m.Annotations,
	}
}
