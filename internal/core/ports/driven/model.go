package driven

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// ModelObject is a live handle to one object inside a ModelDocument.
//
// Fields are addressed by their schema name ("Construction Name",
// "Outside Boundary Condition"). Reference fields hold another object of
// the same document. The capability set is deliberately narrow: matching
// and transplant code never sees a concrete object type.
type ModelObject interface {
	// Handle returns the document-unique identity of the object.
	Handle() string

	// Type returns the object type, e.g. "OS:Surface".
	Type() string

	// Name returns the display name, which is not guaranteed to be unique.
	Name() string

	// Fields lists every field with its schema name, handle excluded.
	Fields() []domain.FieldValue

	// String returns a text field. The boolean is false when the field is
	// unknown to the object type or blank.
	String(field string) (string, bool)

	// SetString writes a text field.
	SetString(field, value string) error

	// Number returns a numeric field or a derived numeric attribute
	// (e.g. "Gross Area" of a surface).
	Number(field string) (float64, bool)

	// SetNumber writes a numeric field.
	SetNumber(field string, value float64) error

	// Ref resolves a reference field to the object it points at.
	Ref(field string) (ModelObject, bool)

	// SetRef points a reference field at target, which must live in the
	// same document.
	SetRef(field string, target ModelObject) error

	// Parent resolves the object's parent relation, if its type has one.
	Parent() (ModelObject, bool)

	// SetParent re-parents the object under parent.
	SetParent(parent ModelObject) error

	// Children returns the objects of type typ whose parent is this object.
	Children(typ string) []ModelObject

	// ListRefs resolves the repeated reference group named group
	// (e.g. the program list of a program calling manager).
	ListRefs(group string) []ModelObject

	// EraseListRef removes entry i of the repeated reference group.
	EraseListRef(group string, i int) error

	// AppendListRef appends target to the repeated reference group.
	AppendListRef(group string, target ModelObject) error

	// Remove deletes the object from its document.
	Remove() error
}

// ModelDocument is a mutable container of model objects loaded from and
// saved to a single file.
type ModelDocument interface {
	// Types returns the distinct object types in document order.
	Types() []string

	// Objects returns every object of type typ in document order.
	Objects(typ string) []ModelObject

	// Object resolves a handle.
	Object(handle string) (ModelObject, bool)

	// ObjectByName returns the first object of type typ named name.
	ObjectByName(typ, name string) (ModelObject, bool)

	// Connected walks the connection graph from obj and returns the
	// nearest object of type typ.
	Connected(obj ModelObject, typ string) (ModelObject, bool)

	// CreateComponent snapshots obj and its resource dependencies.
	CreateComponent(obj ModelObject) (*domain.Component, error)

	// InsertComponent materialises c in this document and returns the live
	// handle of its primary object.
	InsertComponent(c *domain.Component) (ModelObject, error)

	// Origin returns the source handle recorded when obj was inserted from
	// a component.
	Origin(obj ModelObject) (string, bool)

	// Path returns the file the document was loaded from, if any.
	Path() string
}

// DocumentStore loads and saves model documents.
type DocumentStore interface {
	// Load reads the document stored at path.
	Load(ctx context.Context, path string) (ModelDocument, error)

	// Save writes doc to path. A failed save leaves no partial file behind.
	Save(ctx context.Context, doc ModelDocument, path string) error
}
