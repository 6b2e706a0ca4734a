// Package transplant moves model objects between documents.
//
// A transplant snapshots an object of the source document as a component
// and materialises it in the target document. The returned object belongs
// to the target and has no relationship to other target objects yet:
// callers re-parent and re-assign it themselves.
package transplant

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// Transplant copies obj from source into target and returns the target's
// live handle to the copy.
func Transplant(source, target driven.ModelDocument, obj driven.ModelObject) (driven.ModelObject, error) {
	if obj == nil {
		return nil, &domain.InitError{Object: "transplant", Attribute: "source object"}
	}

	comp, err := source.CreateComponent(obj)
	if err != nil {
		return nil, &domain.InsertionError{Object: obj.Name(), Err: err}
	}

	inserted, err := target.InsertComponent(comp)
	if err != nil {
		var ie *domain.InsertionError
		if errors.As(err, &ie) {
			return nil, err
		}
		return nil, &domain.InsertionError{Object: obj.Name(), Err: err}
	}
	if inserted == nil {
		return nil, &domain.InsertionError{Object: obj.Name()}
	}
	return inserted, nil
}

// RequireRef resolves a reference field that must be set.
// An unset or dangling reference is reported as an InitError.
func RequireRef(obj driven.ModelObject, field string) (driven.ModelObject, error) {
	ref, ok := obj.Ref(field)
	if !ok {
		return nil, &domain.InitError{Object: obj.Name(), Attribute: field}
	}
	return ref, nil
}

// RequireString reads a text field that must be set.
func RequireString(obj driven.ModelObject, field string) (string, error) {
	v, ok := obj.String(field)
	if !ok {
		return "", &domain.InitError{Object: obj.Name(), Attribute: field}
	}
	return v, nil
}

// RequireNumber reads a numeric field that must be set.
func RequireNumber(obj driven.ModelObject, field string) (float64, error) {
	v, ok := obj.Number(field)
	if !ok {
		name := obj.Name()
		if name == "" {
			name = obj.Type()
		}
		return 0, &domain.InitError{Object: name, Attribute: field}
	}
	return v, nil
}

// Skippable reports whether err may be logged and skipped under policy.
// Only insertion failures are ever skippable.
func Skippable(policy domain.InsertionPolicy, err error) bool {
	return policy == domain.InsertionSkip && errors.Is(err, domain.ErrInsertionFailed)
}

// Describe names obj for log lines and reports.
func Describe(obj driven.ModelObject) string {
	if name := obj.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%s %s", obj.Type(), obj.Handle())
}
