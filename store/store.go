// Package store persists sequence records in a bolt database so a
// catalog of dual-representation sequences survives between runs.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/seqlab/seqview/bio"
	"github.com/seqlab/seqview/gencode"
	"github.com/seqlab/seqview/record"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

// records is the bucket name for all sequence records.
var records = []byte("records")

// storedView is the serialized form of a single view. An empty
// Alphabet means the domain default.
type storedView struct {
	// Seq is the sequence text.
	Seq string
	// Alphabet lists the alphabet symbols in order.
	Alphabet string `json:",omitempty"`
	// Gap is the gap symbol of a custom alphabet.
	Gap string `json:",omitempty"`
	// Unknown is the unknown symbol of a custom alphabet.
	Unknown string `json:",omitempty"`
}

// storedRecord is the serialized form of a record. The codon map is
// not persisted; back-translation context is supplied per run.
type storedRecord struct {
	// ID is the record identifier.
	ID string
	// Name is the record name.
	Name string `json:",omitempty"`
	// Description is the free-form record description.
	Description string `json:",omitempty"`
	// Active is the active domain tag (nt or aa).
	Active string
	// NT is the nucleotide view if it was materialized.
	NT *storedView `json:",omitempty"`
	// AA is the amino acid view if it was materialized.
	AA *storedView `json:",omitempty"`
	// Dropped marks a counterpart discarded by a frame-breaking edit.
	Dropped bool `json:",omitempty"`
	// GeneticCode is the NCBI genetic code id.
	GeneticCode int
	// Annotations are the per-symbol annotation tracks.
	Annotations map[string][]string `json:",omitempty"`
}

// DB is a catalog of sequence records.
type DB struct {
	db *bolt.DB
}

// Open opens a record catalog at path, creating the database file if
// it doesn't exist.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0666, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Put saves a record under its metadata ID, replacing any previous
// version.
func (d *DB) Put(r record.Record) error {
	id := r.Meta().ID
	if id == "" {
		return errors.New("cannot store a record without an id")
	}
	data, err := json.Marshal(toStored(r))
	if err != nil {
		log.Error("Error serializing record", err)
		return err
	}
	err = d.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(records)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), data)
	})
	if err != nil {
		log.Error("Error saving record", err)
	}
	return err
}

// Get loads the record stored under id.
func (d *DB) Get(id string) (record.Record, error) {
	var data []byte
	err := d.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(records)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(id)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return record.Record{}, err
	}
	if data == nil {
		return record.Record{}, fmt.Errorf("no record with id %q", id)
	}
	var sr storedRecord
	if err := json.Unmarshal(data, &sr); err != nil {
		return record.Record{}, err
	}
	return fromStored(&sr)
}

// List returns the ids of all stored records in key order.
func (d *DB) List() (ids []string, err error) {
	err = d.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(records)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes the record stored under id; deleting an unknown id
// is not an error.
func (d *DB) Delete(id string) error {
	return d.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(records)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(id))
	})
}

func domainTag(d bio.Domain) string {
	if d == bio.NT {
		return "nt"
	}
	return "aa"
}

func viewToStored(v bio.View, d bio.Domain) *storedView {
	sv := &storedView{Seq: v.String()}
	a := v.Alphabet()
	if a.String() != bio.DefaultAlphabet(d).String() {
		sv.Alphabet = a.String()
		sv.Gap = string(byte(a.Gap()))
		sv.Unknown = string(byte(a.Unknown()))
	}
	return sv
}

func toStored(r record.Record) *storedRecord {
	m := r.Meta()
	sr := &storedRecord{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Active:      domainTag(r.Active()),
		Dropped:     r.CounterpartDropped(),
		GeneticCode: 1,
		Annotations: m.Annotations,
	}
	if gc := r.GeneticCode(); gc != nil {
		sr.GeneticCode = gc.ID
	}
	if v, ok := r.NT(); ok {
		sr.NT = viewToStored(v, bio.NT)
	}
	if v, ok := r.AA(); ok {
		sr.AA = viewToStored(v, bio.AA)
	}
	return sr
}

func loadView(sv *storedView, d bio.Domain) (*bio.View, error) {
	if sv == nil {
		return nil, nil
	}
	var a *bio.Alphabet
	if sv.Alphabet != "" {
		if sv.Gap == "" || sv.Unknown == "" {
			return nil, errors.New("stored alphabet misses the gap or the unknown symbol")
		}
		var err error
		a, err = bio.NewAlphabet(sv.Alphabet, bio.Symbol(sv.Gap[0]), bio.Symbol(sv.Unknown[0]))
		if err != nil {
			return nil, err
		}
	}
	v, err := bio.NewView(sv.Seq, d, a)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func fromStored(sr *storedRecord) (record.Record, error) {
	active, err := bio.ParseDomain(sr.Active)
	if err != nil {
		return record.Record{}, err
	}
	nt, err := loadView(sr.NT, bio.NT)
	if err != nil {
		return record.Record{}, err
	}
	aa, err := loadView(sr.AA, bio.AA)
	if err != nil {
		return record.Record{}, err
	}
	r, err := record.Restore(nt, aa, active, sr.Dropped)
	if err != nil {
		return record.Record{}, err
	}
	if sr.GeneticCode != 0 {
		gc, ok := gencode.GeneticCodes[sr.GeneticCode]
		if !ok {
			return record.Record{}, fmt.Errorf("unknown genetic code id %d", sr.GeneticCode)
		}
		r = r.WithGeneticCode(gc)
	}
	return r.WithMeta(record.Metadata{
		ID:          sr.ID,
		Name:        sr.Name,
		Description: sr.Description,
		Annotations: sr.Annotations,
	})
}
