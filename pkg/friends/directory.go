package friends

import (
	"github.com/tidwall/btree"
)

// Directory is a read-only snapshot of friend records indexed by name.
//
// Lookups go through a B-Tree ordered by name. Insertion order is kept as well
// because best friends are seeded in the order they were supplied. A Directory
// is never modified after NewDirectory returns, so the index is built without
// locks and may be read by any number of iterators at once.
type Directory struct {
	index *btree.BTreeG[*Record]
	order []*Record
}

func recordLess(a, b *Record) bool {
	return a.Name < b.Name
}

// NewDirectory builds a Directory from records. When a name appears more than
// once the first record wins and later ones are ignored. The records are copied.
func NewDirectory(records []Record) *Directory {
	d := &Directory{
		index: btree.NewBTreeGOptions(recordLess, btree.Options{NoLocks: true}),
		order: make([]*Record, 0, len(records)),
	}

	for i := range records {
		rec := records[i]
		if d.Contains(rec.Name) {
			continue
		}
		rec.Friends = append([]string(nil), rec.Friends...)
		d.index.Set(&rec)
		d.order = append(d.order, &rec)
	}
	return d
}

// Len returns the number of distinct records.
func (d *Directory) Len() int {
	return len(d.order)
}

// Lookup resolves a name to a copy of its record. An unknown name is not an
// error: it returns nil and false.
func (d *Directory) Lookup(name string) (*Record, bool) {
	rec, ok := d.get(name)
	if !ok {
		return nil, false
	}
	out := rec.clone()
	return &out, true
}

// Contains reports whether name resolves to a record.
func (d *Directory) Contains(name string) bool {
	_, ok := d.get(name)
	return ok
}

func (d *Directory) get(name string) (*Record, bool) {
	return d.index.Get(&Record{Name: name})
}

// Best returns the names of all best friends in insertion order.
func (d *Directory) Best() []string {
	var names []string
	for _, rec := range d.order {
		if rec.Best {
			names = append(names, rec.Name)
		}
	}
	return names
}

// Names returns every name in lexicographic order.
func (d *Directory) Names() []string {
	names := make([]string, 0, d.Len())
	d.Ascend(func(rec Record) bool {
		names = append(names, rec.Name)
		return true
	})
	return names
}

// Records returns copies of every record in insertion order.
func (d *Directory) Records() []Record {
	out := make([]Record, len(d.order))
	for i, rec := range d.order {
		out[i] = rec.clone()
	}
	return out
}

// Ascend calls fn for each record in name order until fn returns false.
func (d *Directory) Ascend(fn func(Record) bool) {
	d.index.Scan(func(rec *Record) bool {
		return fn(rec.clone())
	})
}

// Dangling returns every friend reference that does not resolve, ordered by
// the name of the referring record.
func (d *Directory) Dangling() []DanglingRef {
	var refs []DanglingRef
	d.index.Scan(func(rec *Record) bool {
		for _, name := range rec.Friends {
			if !d.Contains(name) {
				refs = append(refs, DanglingRef{From: rec.Name, To: name})
			}
		}
		return true
	})
	return refs
}

// DanglingRef is a friend reference whose target is absent from the Directory.
type DanglingRef struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r *Record) clone() Record {
	out := *r
	out.Friends = append([]string(nil), r.Friends...)
	return out
}
