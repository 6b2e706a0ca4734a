package domain

// ComponentObject is one object of a Component.
//
// Fields holds the object's data fields in document order with the handle
// slot (index 0) left blank. Refs maps a field index to the index, within
// the owning Component, of the object that field points at.
type ComponentObject struct {
	Type   string      `json:"type"`
	Fields []string    `json:"fields"`
	Refs   map[int]int `json:"refs,omitempty"`
}

// Name returns the object's name field, if it has one.
func (o ComponentObject) Name() string {
	if len(o.Fields) < 2 {
		return ""
	}
	return o.Fields[1]
}

// Component is a context-free snapshot of a model object together with the
// resource objects it depends on. It can be materialised in any document.
type Component struct {
	// UUID is the handle of the source object the component was created from.
	UUID string `json:"uuid"`

	// VersionUUID is a digest of the component contents.
	VersionUUID string `json:"version_uuid"`

	// Objects holds the primary object first, then its dependencies.
	Objects []ComponentObject `json:"objects"`
}

// Primary returns the object the component was created from.
func (c *Component) Primary() (ComponentObject, bool) {
	if c == nil || len(c.Objects) == 0 {
		return ComponentObject{}, false
	}
	return c.Objects[0], true
}
