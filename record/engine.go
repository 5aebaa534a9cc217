package record

import (
	"github.com/seqlab/seqview/bio"
	"github.com/seqlab/seqview/gencode"
)

// Activate makes d the active domain. When the counterpart view is
// present the two views swap roles; otherwise it is derived from the
// active view, NT to AA by translation and AA to NT by
// back-translation with the bound codon map. A missing view is never
// recomputed behind an accessor: this is the only place derivation
// happens.
func (r Record) Activate(d bio.Domain) (Record, error) {
	if d == r.active {
		return r, nil
	}
	if _, ok := r.Counterpart(); !ok {
		derived, err := r.derive(d)
		if err != nil {
			return Record{}, err
		}
		r = r.setView(d, derived)
		r.dropped = false
	}
	r.active = d
	r.meta = r.meta.dropAnnotations()
	return r, nil
}

func (r Record) derive(d bio.Domain) (bio.View, error) {
	if d == bio.AA {
		return gencode.Translate(r.View(), r.gcode)
	}
	return gencode.BackTranslate(r.View(), r.cmap)
}

// Translated returns the record with the amino acid view active.
func (r Record) Translated() (Record, error) {
	return r.Activate(bio.AA)
}

// BackTranslated returns the record with the nucleotide view active.
func (r Record) BackTranslated() (Record, error) {
	return r.Activate(bio.NT)
}

// Slice restricts the record to the active view's half-open range
// [start, stop). A present counterpart follows along: with the amino
// acid view active the nucleotide view is sliced codon-exactly; with
// the nucleotide view active the amino acid view survives only a
// frame-aligned slice and is dropped otherwise.
func (r Record) Slice(start, stop int) (Record, error) {
	av, err := r.View().Slice(start, stop)
	if err != nil {
		return Record{}, err
	}
	res := r.setView(r.active, av)
	if cv, ok := r.Counterpart(); ok {
		switch r.active {
		case bio.AA:
			nv, err := cv.Slice(3*start, 3*stop)
			if err != nil {
				return Record{}, err
			}
			res = res.setView(bio.NT, nv)
		case bio.NT:
			if start%3 == 0 && (stop-start)%3 == 0 {
				pv, err := cv.Slice(start/3, stop/3)
				if err != nil {
					return Record{}, err
				}
				res = res.setView(bio.AA, pv)
			} else {
				res = res.dropCounterpart()
			}
		}
	}
	if av.Len() != r.Len() {
		res.meta = res.meta.dropAnnotations()
	}
	return res, nil
}

// PadTo grows the active view to length n with trailing gaps. n equal
// to the current length is a no-op; a smaller n is an error. A
// present counterpart follows along: the nucleotide view gets three
// gaps per amino acid gap; the amino acid view survives only a pad
// whose delta is a multiple of three and is dropped otherwise.
func (r Record) PadTo(n int) (Record, error) {
	cur := r.Len()
	if n < cur {
		return Record{}, &bio.LengthMismatchError{Op: "pad", Want: cur, Got: n}
	}
	if n == cur {
		return r, nil
	}
	delta := n - cur
	res := r.setView(r.active, r.View().Pad(delta))
	if cv, ok := r.Counterpart(); ok {
		switch r.active {
		case bio.AA:
			res = res.setView(bio.NT, cv.Pad(3*delta))
		case bio.NT:
			if delta%3 == 0 {
				res = res.setView(bio.AA, cv.Pad(delta/3))
			} else {
				res = res.dropCounterpart()
			}
		}
	}
	res.meta = res.meta.dropAnnotations()
	return res, nil
}
