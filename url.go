package fileman

import (
	"context"
	"fmt"
	"iter"
	"net/url"
	"os"
	"strings"
)

// FileURL returns the file URL of path.
func FileURL(path string) *url.URL {
	return &url.URL{Scheme: "file", Path: path}
}

// PathOfURL returns the local path a file URL refers to.
func PathOfURL(u *url.URL) (string, error) {
	if u == nil {
		return "", fmt.Errorf("%w: <nil>", ErrNotFileURL)
	}

	if !strings.EqualFold(u.Scheme, "file") || u.Opaque != "" {
		return "", fmt.Errorf("%w: %s", ErrNotFileURL, u.Redacted())
	}

	if u.Host != "" && !strings.EqualFold(u.Host, "localhost") {
		return "", fmt.Errorf("%w: %s (remote host)", ErrNotFileURL, u.Redacted())
	}

	if u.Path == "" {
		return "", fmt.Errorf("%w: %s (empty path)", ErrNotFileURL, u.Redacted())
	}

	return u.Path, nil
}

func pathsOfURLs(urls ...*url.URL) ([]string, error) {
	paths := make([]string, 0, len(urls))

	for _, u := range urls {
		p, err := PathOfURL(u)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	return paths, nil
}

// ReplaceItemURL is the URL variant of [Manager.ReplaceItem].
func (m *Manager) ReplaceItemURL(ctx context.Context, original *url.URL, replacement *url.URL, opts Options) error {
	paths, err := pathsOfURLs(original, replacement)
	if err != nil {
		return err
	}

	return m.ReplaceItem(ctx, paths[0], paths[1], opts)
}

// MoveItemURL is the URL variant of [Manager.MoveItem].
func (m *Manager) MoveItemURL(ctx context.Context, src *url.URL, dst *url.URL, progress *TransferInfo) error {
	paths, err := pathsOfURLs(src, dst)
	if err != nil {
		return err
	}

	return m.MoveItem(ctx, paths[0], paths[1], progress)
}

// CopyItemURL is the URL variant of [Manager.CopyItem].
func (m *Manager) CopyItemURL(ctx context.Context, src *url.URL, dst *url.URL, progress *TransferInfo) error {
	paths, err := pathsOfURLs(src, dst)
	if err != nil {
		return err
	}

	return m.CopyItem(ctx, paths[0], paths[1], progress)
}

// RemoveItemURL is the URL variant of [Manager.RemoveItem].
func (m *Manager) RemoveItemURL(u *url.URL, recursive bool) error {
	path, err := PathOfURL(u)
	if err != nil {
		return err
	}

	return m.RemoveItem(path, recursive)
}

// CreateDirectoryURL is the URL variant of [Manager.CreateDirectory].
func (m *Manager) CreateDirectoryURL(u *url.URL, mode uint32, recursive bool) error {
	path, err := PathOfURL(u)
	if err != nil {
		return err
	}

	return m.CreateDirectory(path, mode, recursive)
}

// URLEnumerator is an [Enumerator] yielding file URLs.
type URLEnumerator struct {
	*Enumerator
}

// Next returns the URL of the next item of the enumeration.
func (e *URLEnumerator) Next() (*url.URL, bool) {
	path, ok := e.Enumerator.Next()
	if !ok {
		return nil, false
	}

	return FileURL(path), true
}

// All returns an iterator over the remaining URLs of the enumeration.
func (e *URLEnumerator) All() iter.Seq[*url.URL] {
	return func(yield func(*url.URL) bool) {
		for path := range e.Enumerator.All() {
			if !yield(FileURL(path)) {
				return
			}
		}
	}
}

// ContentsOfDirectoryURL is the URL variant of
// [Manager.ContentsOfDirectoryPaths].
func (m *Manager) ContentsOfDirectoryURL(u *url.URL, recursive bool) (*URLEnumerator, error) {
	path, err := PathOfURL(u)
	if err != nil {
		return nil, err
	}

	return &URLEnumerator{m.ContentsOfDirectoryPaths(path, recursive)}, nil
}

// CreateTemporaryFileURL is the URL variant of [Manager.CreateTemporaryFile].
// A nil dir is the temporary directory.
func (m *Manager) CreateTemporaryFileURL(dir *url.URL, template string, suffix string) (*os.File, *url.URL, error) {
	var dirPath string

	if dir != nil {
		p, err := PathOfURL(dir)
		if err != nil {
			return nil, nil, err
		}
		dirPath = p
	}

	file, path, err := m.CreateTemporaryFile(dirPath, template, suffix)
	if err != nil {
		return nil, nil, err
	}

	return file, FileURL(path), nil
}

// TypeOfItemURL is the URL variant of [Manager.TypeOfItem].
func (m *Manager) TypeOfItemURL(u *url.URL) (FileType, error) {
	path, err := PathOfURL(u)
	if err != nil {
		return 0, err
	}

	return m.TypeOfItem(path)
}

// ItemIsReachableURL is the URL variant of [Manager.ItemIsReachable].
func (m *Manager) ItemIsReachableURL(u *url.URL) (bool, error) {
	path, err := PathOfURL(u)
	if err != nil {
		return false, err
	}

	return m.ItemIsReachable(path)
}

// CreateItemReplacementDirectoryURL is the URL variant of
// [Manager.CreateItemReplacementDirectory].
func (m *Manager) CreateItemReplacementDirectoryURL(destination *url.URL, mode uint32) (*url.URL, error) {
	path, err := PathOfURL(destination)
	if err != nil {
		return nil, err
	}

	dir, err := m.CreateItemReplacementDirectory(path, mode)
	if err != nil {
		return nil, err
	}

	return FileURL(dir), nil
}

// TemporaryDirectoryURL is the URL variant of [Manager.TemporaryDirectory].
func (m *Manager) TemporaryDirectoryURL() *url.URL {
	return FileURL(m.TemporaryDirectory())
}
