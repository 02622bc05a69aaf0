package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"golang.org/x/sys/unix"
)

// maxAttributeRetries is how often a read is retried when the buffer probed
// beforehand turned out to be too small (ERANGE).
const maxAttributeRetries = 8

// Attributes is the extended attribute set of a single node, keyed by the
// attribute name (including its namespace prefix, e.g. "user.").
type Attributes map[string][]byte

// Keys returns the sorted names of the set.
func (a Attributes) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Union returns a new set holding the entries of both sets. The entries of
// other win on a key collision.
func (a Attributes) Union(other Attributes) Attributes {
	u := make(Attributes, len(a)+len(other))

	for k, v := range a {
		u[k] = bytes.Clone(v)
	}
	for k, v := range other {
		u[k] = bytes.Clone(v)
	}

	return u
}

// Without returns the names of the set which are not present in other.
func (a Attributes) Without(other Attributes) []string {
	var keys []string

	for _, k := range a.Keys() {
		if _, ok := other[k]; !ok {
			keys = append(keys, k)
		}
	}

	return keys
}

// Equal reports if both sets hold the same names with the same values.
func (a Attributes) Equal(other Attributes) bool {
	return maps.EqualFunc(a, other, bytes.Equal)
}

// Clone returns a deep copy of the set.
func (a Attributes) Clone() Attributes {
	return a.Union(nil)
}

// ListAttributes returns the extended attributes of a node, without following
// a symbolic link. Attributes in skipped namespaces are left out. A filesystem
// without extended attribute support yields an empty set.
func (h *Handler) ListAttributes(path string) (Attributes, error) {
	names, err := h.listNames(path)
	if err != nil {
		return nil, err
	}

	attrs := make(Attributes, len(names))

	for _, name := range names {
		if h.isSkipped(name) {
			continue
		}

		value, err := h.getValue(path, name)
		if errors.Is(err, unix.ENODATA) {
			continue // removed in between
		} else if err != nil {
			return nil, err
		}

		attrs[name] = value
	}

	return attrs, nil
}

func (h *Handler) listNames(path string) ([]string, error) {
	for range maxAttributeRetries {
		size, err := h.unixHandler.Llistxattr(path, nil)
		if errors.Is(err, unix.ENOTSUP) {
			return nil, nil
		} else if err != nil {
			return nil, &fs.PathError{Op: "llistxattr", Path: path, Err: err}
		}

		if size == 0 {
			return nil, nil
		}

		buf := make([]byte, size)

		n, err := h.unixHandler.Llistxattr(path, buf)
		if errors.Is(err, unix.ERANGE) {
			continue
		} else if err != nil {
			return nil, &fs.PathError{Op: "llistxattr", Path: path, Err: err}
		}

		return splitNames(buf[:n]), nil
	}

	return nil, &fs.PathError{Op: "llistxattr", Path: path, Err: fmt.Errorf("%w: %w", ErrAttributeRetries, unix.ERANGE)}
}

func (h *Handler) getValue(path string, name string) ([]byte, error) {
	for range maxAttributeRetries {
		size, err := h.unixHandler.Lgetxattr(path, name, nil)
		if err != nil {
			return nil, &fs.PathError{Op: "lgetxattr", Path: path, Err: err}
		}

		buf := make([]byte, size)
		if size == 0 {
			return buf, nil
		}

		n, err := h.unixHandler.Lgetxattr(path, name, buf)
		if errors.Is(err, unix.ERANGE) {
			continue
		} else if err != nil {
			return nil, &fs.PathError{Op: "lgetxattr", Path: path, Err: err}
		}

		return buf[:n], nil
	}

	return nil, &fs.PathError{Op: "lgetxattr", Path: path, Err: fmt.Errorf("%w: %w", ErrAttributeRetries, unix.ERANGE)}
}

func splitNames(buf []byte) []string {
	var names []string

	for _, b := range bytes.Split(buf, []byte{0}) {
		if len(b) > 0 {
			names = append(names, string(b))
		}
	}

	return names
}

// WriteAttributes sets all attributes of the set on a node, without following
// a symbolic link. Attributes of the node not contained in the set are left
// untouched. Writing an empty set is a no-op.
func (h *Handler) WriteAttributes(path string, attrs Attributes) error {
	if len(attrs) == 0 {
		return nil
	}

	for _, name := range attrs.Keys() {
		if err := h.unixHandler.Lsetxattr(path, name, attrs[name], 0); err != nil {
			return &fs.PathError{Op: "lsetxattr", Path: path, Err: err}
		}
	}

	return nil
}

// RemoveAttributes removes the named attributes from a node, without following
// a symbolic link. Names that are already absent are ignored.
func (h *Handler) RemoveAttributes(path string, names []string) error {
	for _, name := range names {
		if err := h.unixHandler.Lremovexattr(path, name); err != nil && !errors.Is(err, unix.ENODATA) {
			return &fs.PathError{Op: "lremovexattr", Path: path, Err: err}
		}
	}

	return nil
}
