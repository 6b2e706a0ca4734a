package osm

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.ModelDocument = (*Document)(nil)

// Document is an in-memory building model.
type Document struct {
	path     string
	objects  []*object
	byHandle map[string]*object

	now       func() time.Time
	newHandle func() string
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		byHandle:  make(map[string]*object),
		now:       time.Now,
		newHandle: func() string { return "{" + uuid.NewString() + "}" },
	}
}

// Parse reads a document from r. Objects without a handle are given one.
func Parse(r io.Reader) (*Document, error) {
	raws, err := decode(r)
	if err != nil {
		return nil, err
	}

	d := NewDocument()
	for _, raw := range raws {
		fields := raw.fields
		if len(fields) == 0 {
			fields = []string{""}
		}
		if fields[0] == "" {
			fields[0] = d.newHandle()
		}
		if _, dup := d.byHandle[fields[0]]; dup {
			return nil, fmt.Errorf("%w: duplicate handle %s at line %d",
				domain.ErrInvalidInput, fields[0], raw.line)
		}
		d.add(&object{typ: raw.typ, fields: fields})
	}
	return d, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// WriteTo serialises the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := encode(cw, d.objects)
	return cw.n, err
}

// String returns the serialised document.
func (d *Document) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Len returns the number of objects in the document.
func (d *Document) Len() int {
	return len(d.objects)
}

// Types returns the distinct object types in first-seen order.
func (d *Document) Types() []string {
	var types []string
	for _, o := range d.objects {
		if !slices.Contains(types, o.typ) {
			types = append(types, o.typ)
		}
	}
	return types
}

// Objects returns every object of type typ in document order.
func (d *Document) Objects(typ string) []driven.ModelObject {
	var out []driven.ModelObject
	for _, o := range d.objects {
		if o.typ == typ {
			out = append(out, o)
		}
	}
	return out
}

// Object resolves a handle.
func (d *Document) Object(handle string) (driven.ModelObject, bool) {
	o, ok := d.byHandle[handle]
	if !ok {
		return nil, false
	}
	return o, true
}

// ObjectByName returns the first object of type typ named name.
func (d *Document) ObjectByName(typ, name string) (driven.ModelObject, bool) {
	for _, o := range d.objects {
		if o.typ == typ && o.Name() == name {
			return o, true
		}
	}
	return nil, false
}

// Add appends a new object of type typ with the given fields after the
// handle, returning it. Mostly useful for building documents in code.
func (d *Document) Add(typ string, fields ...string) driven.ModelObject {
	o := &object{typ: typ, fields: append([]string{d.newHandle()}, fields...)}
	d.add(o)
	return o
}

func (d *Document) add(o *object) {
	o.doc = d
	d.objects = append(d.objects, o)
	d.byHandle[o.fields[0]] = o
}

// lookup resolves a handle to a live object.
func (d *Document) lookup(handle string) (*object, bool) {
	if handle == "" {
		return nil, false
	}
	o, ok := d.byHandle[handle]
	return o, ok
}

// own converts a port object into one of this document's objects.
func (d *Document) own(m driven.ModelObject) (*object, error) {
	o, ok := m.(*object)
	if !ok || o == nil || o.doc != d || o.removed {
		return nil, fmt.Errorf("%w: object does not belong to this document", domain.ErrInvalidInput)
	}
	return o, nil
}

// remove detaches o and its children, blanking references to them.
func (d *Document) remove(o *object) {
	if o.removed {
		return
	}
	o.removed = true
	delete(d.byHandle, o.fields[0])
	d.objects = slices.DeleteFunc(d.objects, func(x *object) bool { return x == o })

	var children []*object
	for _, x := range d.objects {
		l := layoutOf(x.typ)
		if l.parent != "" && l.child && x.get(l.fieldIndex(l.parent)) == o.fields[0] {
			children = append(children, x)
		}
	}
	for _, c := range children {
		d.remove(c)
	}

	handle := o.fields[0]
	for _, x := range d.objects {
		for i := 1; i < len(x.fields); i++ {
			if x.fields[i] == handle {
				x.fields[i] = ""
			}
		}
	}
}

// uniqueName returns name, suffixed with " 1", " 2"... until no other
// object of type typ carries it.
func (d *Document) uniqueName(typ, name string) string {
	if name == "" {
		return name
	}
	taken := make(map[string]bool)
	for _, o := range d.objects {
		if o.typ == typ {
			taken[o.Name()] = true
		}
	}
	if !taken[name] {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s %d", name, i)
		if !taken[candidate] {
			return candidate
		}
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
