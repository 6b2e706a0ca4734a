// Package osm provides the building-model document adapter.
//
// It implements driven.ModelDocument and driven.DocumentStore over the
// plain-text model format: comma separated fields, one object per
// semicolon, "!" comments to end of line. Field 0 of every object is its
// handle, and a field holding another object's handle is a reference.
//
// # Schema
//
// Field names are known for the object types the swappers touch (see
// schema.go). Other types are carried through untouched, with field 1
// treated as the name.
//
// # Components
//
// CreateComponent snapshots an object together with the resource objects
// it references (constructions, materials, schedules, definitions) and the
// children of those resources. InsertComponent reuses equivalent objects
// already present in the target and records an OS:ComponentData object
// naming the source handle, which is how transplanted objects are
// recognised on later runs.
//
// # Thread Safety
//
// Documents are not safe for concurrent use. A swap run has a single writer.
package osm
