package services

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/core/ports/driving"
)

// Ensure InspectService implements the interface.
var _ driving.InspectService = (*InspectService)(nil)

// maxAncestors bounds parent walks over malformed, cyclic models.
const maxAncestors = 64

// InspectService describes model objects and their parent chains.
type InspectService struct {
	documents driven.DocumentStore
}

// NewInspectService creates a new inspect service.
func NewInspectService(documents driven.DocumentStore) *InspectService {
	return &InspectService{documents: documents}
}

// Describe loads the model at path and describes the object named or
// identified by ref.
func (s *InspectService) Describe(ctx context.Context, path, ref, query string) (*domain.Inspection, error) {
	if s.documents == nil {
		return nil, domain.ErrNotImplemented
	}
	if ref == "" {
		return nil, fmt.Errorf("%w: empty object reference", domain.ErrInvalidInput)
	}

	resolved, err := realPath(path, false)
	if err != nil {
		return nil, err
	}
	doc, err := s.documents.Load(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	obj, ok := findObject(doc, ref)
	if !ok {
		return nil, fmt.Errorf("%w: no object %q in %s", domain.ErrNotFound, ref, path)
	}

	out := &domain.Inspection{Object: summarize(obj, query)}
	for parent := range Ancestors(obj) {
		out.Ancestors = append(out.Ancestors, summarize(parent, query))
	}
	return out, nil
}

// Ancestors yields the parent chain of obj, nearest first. The walk stops
// at a repeated object or after a fixed depth.
func Ancestors(obj driven.ModelObject) iter.Seq[driven.ModelObject] {
	return func(yield func(driven.ModelObject) bool) {
		seen := map[string]bool{obj.Handle(): true}
		cur := obj
		for range maxAncestors {
			parent, ok := cur.Parent()
			if !ok || seen[parent.Handle()] {
				return
			}
			seen[parent.Handle()] = true
			if !yield(parent) {
				return
			}
			cur = parent
		}
	}
}

// findObject resolves ref as a handle first, then as a name of any type.
func findObject(doc driven.ModelDocument, ref string) (driven.ModelObject, bool) {
	if obj, ok := doc.Object(ref); ok {
		return obj, true
	}
	for _, typ := range doc.Types() {
		if obj, ok := doc.ObjectByName(typ, ref); ok {
			return obj, true
		}
	}
	return nil, false
}

func summarize(obj driven.ModelObject, query string) domain.ObjectSummary {
	q := strings.ToLower(query)
	var fields []domain.FieldValue
	for _, f := range obj.Fields() {
		if q == "" || strings.Contains(strings.ToLower(f.Name), q) {
			fields = append(fields, f)
		}
	}
	return domain.ObjectSummary{
		Handle: obj.Handle(),
		Type:   obj.Type(),
		Name:   obj.Name(),
		Fields: fields,
	}
}
