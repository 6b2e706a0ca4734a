package osm

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

const componentDataName = "Component Data"

// CreateComponent snapshots obj with the resources it references and the
// children of those resources. References leaving the closure are blanked.
func (d *Document) CreateComponent(m driven.ModelObject) (*domain.Component, error) {
	root, err := d.own(m)
	if err != nil {
		return nil, fmt.Errorf("create component: %w", err)
	}

	members := []*object{root}
	index := map[*object]int{root: 0}
	include := func(o *object) {
		if _, ok := index[o]; ok {
			return
		}
		index[o] = len(members)
		members = append(members, o)
	}

	for i := 0; i < len(members); i++ {
		o := members[i]
		l := layoutOf(o.typ)
		for f := 1; f < len(o.fields); f++ {
			if l.inGroup(f) && l.indirectGroup {
				continue
			}
			if t, ok := d.lookup(o.fields[f]); ok && isResource(t.typ) {
				include(t)
			}
		}
		for _, x := range d.objects {
			xl := layoutOf(x.typ)
			if xl.child && xl.parent != "" && x.get(xl.fieldIndex(xl.parent)) == o.Handle() {
				include(x)
			}
		}
	}

	c := &domain.Component{UUID: root.Handle()}
	for _, o := range members {
		co := domain.ComponentObject{
			Type:   o.typ,
			Fields: make([]string, len(o.fields)),
		}
		for f := 1; f < len(o.fields); f++ {
			t, ok := d.lookup(o.fields[f])
			if !ok {
				co.Fields[f] = o.fields[f]
				continue
			}
			if j, in := index[t]; in {
				if co.Refs == nil {
					co.Refs = make(map[int]int)
				}
				co.Refs[f] = j
			}
		}
		c.Objects = append(c.Objects, co)
	}

	digest, err := json.Marshal(c.Objects)
	if err != nil {
		return nil, fmt.Errorf("create component: %w", err)
	}
	c.VersionUUID = "{" + uuid.NewSHA1(uuid.NameSpaceOID, digest).String() + "}"

	return c, nil
}

// insertion states of component objects.
const (
	pending = iota
	reused
	added
)

// InsertComponent materialises c. A resource component inserted before
// (matching UUID and Version UUID in an OS:ComponentData) returns the
// earlier copy. Otherwise objects equal to one already present (same type,
// same fields, references resolving to the same objects) are reused and the
// rest are added under fresh handles and unique names.
func (d *Document) InsertComponent(c *domain.Component) (driven.ModelObject, error) {
	primary, ok := c.Primary()
	if !ok {
		return nil, &domain.InsertionError{Object: "component", Err: domain.ErrInvalidInput}
	}
	if err := validateComponent(c); err != nil {
		return nil, &domain.InsertionError{Object: primary.Name(), Err: err}
	}
	if isResource(primary.Type) {
		if prev := d.previousInsert(c); prev != nil {
			return prev, nil
		}
	}

	n := len(c.Objects)
	state := make([]int, n)
	resolved := make([]*object, n)

	for progress := true; progress; {
		progress = false
		for i, co := range c.Objects {
			if state[i] != pending {
				continue
			}
			ready, fresh := true, false
			for _, j := range co.Refs {
				if j == i {
					continue
				}
				switch state[j] {
				case pending:
					ready = false
				case added:
					fresh = true
				}
			}
			if !ready {
				continue
			}
			progress = true
			if !fresh {
				if existing := d.equivalent(co, i, resolved); existing != nil {
					state[i], resolved[i] = reused, existing
					continue
				}
			}
			state[i] = added
			resolved[i] = &object{typ: co.Type}
		}
	}
	for i := range state {
		if state[i] == pending {
			state[i] = added
			resolved[i] = &object{typ: c.Objects[i].Type}
		}
	}

	for i, o := range resolved {
		if state[i] == added {
			o.fields = []string{d.newHandle()}
		}
	}
	for i, o := range resolved {
		if state[i] != added {
			continue
		}
		co := c.Objects[i]
		o.fields = append(o.fields, make([]string, len(co.Fields)-1)...)
		for f := 1; f < len(co.Fields); f++ {
			if j, ok := co.Refs[f]; ok {
				o.fields[f] = resolved[j].Handle()
			} else {
				o.fields[f] = co.Fields[f]
			}
		}
		if ni := layoutOf(o.typ).fieldIndex(domain.FieldName); ni > 0 && ni < len(o.fields) {
			o.fields[ni] = d.uniqueName(o.typ, o.fields[ni])
		}
		d.add(o)
	}

	d.recordComponent(c, resolved)
	return resolved[0], nil
}

func validateComponent(c *domain.Component) error {
	for i, o := range c.Objects {
		if o.Type == "" || len(o.Fields) == 0 {
			return fmt.Errorf("%w: component object %d has no type or fields", domain.ErrInvalidInput, i)
		}
		for f, j := range o.Refs {
			if f <= 0 || f >= len(o.Fields) || j < 0 || j >= len(c.Objects) {
				return fmt.Errorf("%w: component object %d has a dangling reference", domain.ErrInvalidInput, i)
			}
		}
	}
	return nil
}

// equivalent finds an object equal to component object i.
func (d *Document) equivalent(co domain.ComponentObject, i int, resolved []*object) *object {
	for _, x := range d.objects {
		if x.typ != co.Type {
			continue
		}
		size := max(len(x.fields), len(co.Fields))
		same := true
		for f := 1; f < size && same; f++ {
			want := ""
			if j, ok := co.Refs[f]; ok {
				if j == i {
					want = x.Handle()
				} else {
					want = resolved[j].Handle()
				}
			} else if f < len(co.Fields) {
				want = co.Fields[f]
			}
			same = x.get(f) == want
		}
		if same {
			return x
		}
	}
	return nil
}

// previousInsert returns the primary object of an earlier insertion of c,
// provided every object that insertion listed is still in the document.
func (d *Document) previousInsert(c *domain.Component) *object {
	l := layoutOf(domain.TypeComponentData)
	first := len(l.fields)
	uuidIdx, versionIdx := l.fieldIndex("UUID"), l.fieldIndex("Version UUID")

	for _, x := range d.objects {
		if x.typ != domain.TypeComponentData ||
			x.get(uuidIdx) != c.UUID || x.get(versionIdx) != c.VersionUUID {
			continue
		}
		if len(x.fields) <= first {
			continue
		}
		primary, ok := d.lookup(x.get(first))
		if !ok || primary.typ != c.Objects[0].Type {
			continue
		}
		intact := true
		for f := first + 1; f < len(x.fields) && intact; f++ {
			_, intact = d.lookup(x.fields[f])
		}
		if intact {
			return primary
		}
	}
	return nil
}

// recordComponent writes the OS:ComponentData provenance object, unless
// the primary was reused and already carries one.
func (d *Document) recordComponent(c *domain.Component, resolved []*object) {
	primary := resolved[0]
	if _, ok := d.Origin(primary); ok {
		return
	}

	ts := strconv.FormatInt(d.now().Unix(), 10)
	fields := []string{
		d.newHandle(),
		d.uniqueName(domain.TypeComponentData, componentDataName),
		c.UUID,
		c.VersionUUID,
		ts,
		ts,
	}
	seen := make(map[*object]bool)
	for _, o := range resolved {
		if !seen[o] {
			seen[o] = true
			fields = append(fields, o.Handle())
		}
	}
	d.add(&object{typ: domain.TypeComponentData, fields: fields})
}

// Origin returns the source handle recorded for a transplanted object.
func (d *Document) Origin(m driven.ModelObject) (string, bool) {
	o, err := d.own(m)
	if err != nil {
		return "", false
	}
	l := layoutOf(domain.TypeComponentData)
	first := len(l.fields)
	uuidIdx := l.fieldIndex("UUID")
	for _, x := range d.objects {
		if x.typ == domain.TypeComponentData && x.get(first) == o.Handle() {
			v := x.get(uuidIdx)
			return v, v != ""
		}
	}
	return "", false
}
