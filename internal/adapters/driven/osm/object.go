package osm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.ModelObject = (*object)(nil)

type object struct {
	doc     *Document
	typ     string
	fields  []string
	removed bool
}

func (o *object) Handle() string { return o.fields[0] }

func (o *object) Type() string { return o.typ }

func (o *object) Name() string {
	return o.get(layoutOf(o.typ).fieldIndex(domain.FieldName))
}

func (o *object) Fields() []domain.FieldValue {
	l := layoutOf(o.typ)
	out := make([]domain.FieldValue, 0, len(o.fields)-1)
	for i := 1; i < len(o.fields); i++ {
		name := l.fieldName(i)
		if name == "" {
			name = "Field " + strconv.Itoa(i)
		}
		out = append(out, domain.FieldValue{Name: name, Value: o.fields[i]})
	}
	return out
}

// get returns field i, or "" when i is out of range.
func (o *object) get(i int) string {
	if i < 0 || i >= len(o.fields) {
		return ""
	}
	return o.fields[i]
}

// set writes field i, growing the field list as needed.
func (o *object) set(i int, v string) {
	for len(o.fields) <= i {
		o.fields = append(o.fields, "")
	}
	o.fields[i] = v
}

// index resolves a fixed field name.
func (o *object) index(field string) (int, error) {
	if o.removed {
		return -1, fmt.Errorf("%w: object %s was removed", domain.ErrNotFound, o.fields[0])
	}
	i := layoutOf(o.typ).fieldIndex(field)
	if i <= 0 {
		return -1, fmt.Errorf("%w: %s has no field %q", domain.ErrInvalidInput, o.typ, field)
	}
	return i, nil
}

func (o *object) String(field string) (string, bool) {
	i, err := o.index(field)
	if err != nil {
		return "", false
	}
	v := o.get(i)
	return v, v != ""
}

func (o *object) SetString(field, value string) error {
	i, err := o.index(field)
	if err != nil {
		return err
	}
	o.set(i, value)
	return nil
}

func (o *object) Number(field string) (float64, bool) {
	if o.typ == domain.TypeSurface && field == domain.FieldGrossArea {
		return o.grossArea()
	}
	v, ok := o.String(field)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (o *object) SetNumber(field string, value float64) error {
	return o.SetString(field, strconv.FormatFloat(value, 'g', -1, 64))
}

func (o *object) Ref(field string) (driven.ModelObject, bool) {
	v, ok := o.String(field)
	if !ok {
		return nil, false
	}
	target, ok := o.doc.lookup(v)
	if !ok {
		return nil, false
	}
	return target, true
}

func (o *object) SetRef(field string, target driven.ModelObject) error {
	i, err := o.index(field)
	if err != nil {
		return err
	}
	t, err := o.doc.own(target)
	if err != nil {
		return fmt.Errorf("set %s of %s: %w", field, o.Name(), err)
	}
	o.set(i, t.Handle())
	return nil
}

func (o *object) Parent() (driven.ModelObject, bool) {
	l := layoutOf(o.typ)
	if l.parent == "" {
		return nil, false
	}
	return o.Ref(l.parent)
}

func (o *object) SetParent(parent driven.ModelObject) error {
	if o.removed {
		return fmt.Errorf("%w: object %s was removed", domain.ErrNotFound, o.fields[0])
	}
	p, err := o.doc.own(parent)
	if err != nil {
		return fmt.Errorf("set parent of %s: %w", o.Name(), err)
	}
	l := layoutOf(o.typ)
	if !l.acceptsParent(p.typ) {
		return fmt.Errorf("%w: %s cannot be parented by %s", domain.ErrInvalidInput, o.typ, p.typ)
	}
	o.set(l.fieldIndex(l.parent), p.Handle())
	return nil
}

func (o *object) Children(typ string) []driven.ModelObject {
	l := layoutOf(typ)
	if l.parent == "" || o.removed {
		return nil
	}
	pi := l.fieldIndex(l.parent)
	var out []driven.ModelObject
	for _, x := range o.doc.objects {
		if x.typ == typ && x.get(pi) == o.Handle() {
			out = append(out, x)
		}
	}
	return out
}

// groupPositions returns the field positions of group member name.
func (o *object) groupPositions(name string) ([]int, error) {
	if o.removed {
		return nil, fmt.Errorf("%w: object %s was removed", domain.ErrNotFound, o.fields[0])
	}
	l := layoutOf(o.typ)
	off := l.groupIndex(name)
	if off < 0 {
		return nil, fmt.Errorf("%w: %s has no group %q", domain.ErrInvalidInput, o.typ, name)
	}
	var pos []int
	for i := len(l.fields) + off; i < len(o.fields); i += len(l.group) {
		pos = append(pos, i)
	}
	return pos, nil
}

func (o *object) ListRefs(group string) []driven.ModelObject {
	pos, err := o.groupPositions(group)
	if err != nil {
		return nil
	}
	var out []driven.ModelObject
	for _, i := range pos {
		if t, ok := o.doc.lookup(o.fields[i]); ok {
			out = append(out, t)
		}
	}
	return out
}

// EraseListRef removes entry i of a single-field reference group.
// Blank or dangling entries are skipped when counting, matching ListRefs.
func (o *object) EraseListRef(group string, i int) error {
	pos, err := o.groupPositions(group)
	if err != nil {
		return err
	}
	if len(layoutOf(o.typ).group) != 1 {
		return fmt.Errorf("%w: group %q spans several fields", domain.ErrInvalidInput, group)
	}
	n := 0
	for _, p := range pos {
		if _, ok := o.doc.lookup(o.fields[p]); !ok {
			continue
		}
		if n == i {
			o.fields = append(o.fields[:p], o.fields[p+1:]...)
			return nil
		}
		n++
	}
	return fmt.Errorf("%w: %s entry %d of %s", domain.ErrNotFound, group, i, o.Name())
}

// AppendListRef drops trailing blank entries of the group before appending.
func (o *object) AppendListRef(group string, target driven.ModelObject) error {
	if _, err := o.groupPositions(group); err != nil {
		return err
	}
	if len(layoutOf(o.typ).group) != 1 {
		return fmt.Errorf("%w: group %q spans several fields", domain.ErrInvalidInput, group)
	}
	t, err := o.doc.own(target)
	if err != nil {
		return fmt.Errorf("append to %s of %s: %w", group, o.Name(), err)
	}
	fixed := len(layoutOf(o.typ).fields)
	for len(o.fields) < fixed {
		o.fields = append(o.fields, "")
	}
	for len(o.fields) > fixed && o.fields[len(o.fields)-1] == "" {
		o.fields = o.fields[:len(o.fields)-1]
	}
	o.fields = append(o.fields, t.Handle())
	return nil
}

func (o *object) Remove() error {
	if o.removed {
		return fmt.Errorf("%w: object %s was removed", domain.ErrNotFound, o.fields[0])
	}
	o.doc.remove(o)
	return nil
}
