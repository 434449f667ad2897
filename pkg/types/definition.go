package types

import (
	"strings"

	"github.com/arthur-debert/assetgen/pkg/errors"
)

// NamespaceSeparator splits a resource id into namespace and name
const NamespaceSeparator = ":"

// Definition is one entry of the definition file
type Definition struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Requires []string `json:"requires" yaml:"requires" toml:"requires"`
}

// Has reports whether kind is listed in Requires
func (d Definition) Has(kind string) bool {
	for _, r := range d.Requires {
		if r == kind {
			return true
		}
	}
	return false
}

// ResourceID is a parsed "namespace:name" identifier
type ResourceID struct {
	Namespace string
	Name      string
}

// String returns the "namespace:name" form
func (r ResourceID) String() string {
	return r.Namespace + NamespaceSeparator + r.Name
}

// ParseID splits id at the first separator. Both halves must be non-empty.
func ParseID(id string) (ResourceID, error) {
	namespace, name, found := strings.Cut(id, NamespaceSeparator)
	if !found {
		return ResourceID{}, errors.Newf(errors.ErrDefinitionInvalid, "id %q has no namespace separator", id).
			WithDetail("id", id)
	}
	if namespace == "" || name == "" {
		return ResourceID{}, errors.Newf(errors.ErrDefinitionInvalid, "id %q must have a namespace and a name", id).
			WithDetail("id", id)
	}
	return ResourceID{Namespace: namespace, Name: name}, nil
}
