package filesystem

import (
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
)

const enumeratorBatchSize = 128

// Enumerator is a lazy, single-pass listing of the contents of a directory.
// A recursive enumeration is a depth-first pre-order traversal: a directory
// is yielded before its own contents are. Only one open directory is held per
// level of the traversal and each is closed as soon as it is exhausted.
//
// An Enumerator is not safe for concurrent use.
type Enumerator struct {
	osHandler osProvider
	root      string
	recursive bool
	fullPaths bool

	stack   []*directoryRecord
	started bool
	closed  bool
	err     error
}

type directoryRecord struct {
	file  *os.File
	rel   string
	batch []os.DirEntry
}

// ContentsOfDirectory returns an [Enumerator] yielding the paths of the
// directory's contents relative to path. A root that cannot be opened yields
// nothing; the reason is then available from [Enumerator.Err].
func (f *Handler) ContentsOfDirectory(path string, recursive bool) *Enumerator {
	return &Enumerator{
		osHandler: f.osHandler,
		root:      path,
		recursive: recursive,
	}
}

// ContentsOfDirectoryPaths is like [Handler.ContentsOfDirectory], but yields
// the contents joined onto path.
func (f *Handler) ContentsOfDirectoryPaths(path string, recursive bool) *Enumerator {
	e := f.ContentsOfDirectory(path, recursive)
	e.fullPaths = true

	return e
}

// Next returns the next path of the enumeration, or false if the enumeration
// is exhausted or was closed.
func (e *Enumerator) Next() (string, bool) {
	if e.closed {
		return "", false
	}

	if !e.started {
		e.started = true

		root, err := e.osHandler.Open(e.root)
		if err != nil {
			e.err = err
			e.closed = true

			return "", false
		}

		e.stack = append(e.stack, &directoryRecord{file: root})
	}

	for len(e.stack) > 0 {
		top := e.stack[len(e.stack)-1]

		if len(top.batch) == 0 {
			entries, err := top.file.ReadDir(enumeratorBatchSize)
			if len(entries) == 0 {
				if err != nil && !errors.Is(err, io.EOF) {
					e.setErr(err)
				}
				e.pop()

				continue
			}
			top.batch = entries
		}

		entry := top.batch[0]
		top.batch = top.batch[1:]

		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		rel := name
		if top.rel != "" {
			rel = top.rel + "/" + name
		}

		if e.recursive && entry.IsDir() {
			child, err := e.osHandler.Open(filepath.Join(e.root, rel))
			if err != nil {
				e.setErr(err)
			} else {
				e.stack = append(e.stack, &directoryRecord{file: child, rel: rel})
			}
		}

		if e.fullPaths {
			return filepath.Join(e.root, rel), true
		}

		return rel, true
	}

	e.closed = true

	return "", false
}

// All returns the remaining enumeration as an iterator. Stopping the
// iteration early closes the [Enumerator].
func (e *Enumerator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			path, ok := e.Next()
			if !ok {
				return
			}

			if !yield(path) {
				e.Close() //nolint:errcheck

				return
			}
		}
	}
}

// Err returns the first error encountered while opening or reading one of
// the enumerated directories.
func (e *Enumerator) Err() error {
	return e.err
}

// Close releases all directories still held open by the enumeration. Further
// calls to [Enumerator.Next] yield nothing.
func (e *Enumerator) Close() error {
	var errs []error

	for len(e.stack) > 0 {
		if err := e.stack[len(e.stack)-1].file.Close(); err != nil {
			errs = append(errs, err)
		}
		e.stack = e.stack[:len(e.stack)-1]
	}

	e.started = true
	e.closed = true

	return errors.Join(errs...)
}

func (e *Enumerator) pop() {
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	if err := top.file.Close(); err != nil {
		e.setErr(err)
	}
}

func (e *Enumerator) setErr(err error) {
	if e.err == nil {
		e.err = err
	}
}
