package domain

import "slices"

// StandardsTag holds the three standards fields written onto a space type.
type StandardsTag struct {
	Template     string
	BuildingType string
	SpaceType    string
}

// StandardsCatalog is an immutable, ordered lookup of standards tags keyed
// by a canonical space-type phrase. Key order is the phrase matcher's
// tie-break order.
type StandardsCatalog struct {
	keys []string
	tags map[string]StandardsTag
}

// NewStandardsCatalog builds a catalog from the given keys and tags.
// Keys without a tag are dropped; duplicate keys keep their first position.
func NewStandardsCatalog(keys []string, tags map[string]StandardsTag) StandardsCatalog {
	c := StandardsCatalog{tags: make(map[string]StandardsTag, len(keys))}
	for _, k := range keys {
		tag, ok := tags[k]
		if !ok {
			continue
		}
		if _, seen := c.tags[k]; seen {
			continue
		}
		c.keys = append(c.keys, k)
		c.tags[k] = tag
	}
	return c
}

// DefaultStandardsCatalog returns the medium-office catalog.
func DefaultStandardsCatalog() StandardsCatalog {
	return NewStandardsCatalog(
		[]string{"Office WholeBuilding - Md Office", "Plenum"},
		map[string]StandardsTag{
			"Office WholeBuilding - Md Office": {
				Template:     "90.1-2016",
				BuildingType: "Office",
				SpaceType:    "WholeBuilding - Md Office",
			},
			"Plenum": {
				Template:     "90.1-2016",
				BuildingType: "MediumOffice",
				SpaceType:    "Plenum",
			},
		},
	)
}

// Keys returns a copy of the catalog keys in order.
func (c StandardsCatalog) Keys() []string {
	return slices.Clone(c.keys)
}

// Lookup returns the tag stored under key.
func (c StandardsCatalog) Lookup(key string) (StandardsTag, bool) {
	tag, ok := c.tags[key]
	return tag, ok
}

// Len returns the number of entries.
func (c StandardsCatalog) Len() int {
	return len(c.keys)
}
