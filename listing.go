package unidrive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/deotya/unidrive/data"
)

// Entry is one virtualized directory entry as reported to the client: drive
// letters at the top level, native entries below. Path carries the entry's
// virtual address so listing results can be sent back without another
// translation round.
type Entry struct {
	Name    string
	Path    data.VirtualPath
	Size    int64
	IsDir   bool
	ModTime time.Time
}

// DirectoryReader supplies the native side of listing virtualization. The
// default implementation reads the host filesystem; tests and embedders
// inject their own.
type DirectoryReader interface {
	ReadDir(ctx context.Context, native data.NativePath) ([]*Entry, error)
	Stat(ctx context.Context, native data.NativePath) (*Entry, error)
}

// ReadDirectory lists the children of a native directory in virtual terms.
// At the root sentinel the mounted drives appear as synthesized directory
// entries, in letter order, sized by total volume space; everywhere else the
// native listing is converted entry by entry through reverse translation.
func (ns *Namespace) ReadDirectory(ctx context.Context, native data.NativePath) ([]*Entry, error) {
	if native.IsSentinel() {
		infos, err := ns.drives.List(ctx)
		if err != nil {
			return nil, err
		}

		entries := make([]*Entry, 0, len(infos))
		for _, info := range infos {
			entries = append(entries, &Entry{
				Name:  info.Letter.String(),
				Path:  data.Drive(info.Letter),
				Size:  int64(info.TotalSpace),
				IsDir: true,
			})
		}

		return entries, nil
	}

	entries, err := ns.reader.ReadDir(ctx, native)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		virtual, err := ns.translator.Unresolve(native.Join(entry.Name))
		if err != nil {
			return nil, err
		}
		entry.Path = virtual
	}

	return entries, nil
}

// StatEntry describes a native path in virtual terms. The sentinel and
// mounted drive roots are synthesized directories; drive roots for unmounted
// letters fail with ErrDriveNotFound.
func (ns *Namespace) StatEntry(ctx context.Context, native data.NativePath) (*Entry, error) {
	if native.IsSentinel() {
		return &Entry{Name: "/", Path: data.Root(), IsDir: true}, nil
	}

	if native.IsDriveRoot() {
		letter, err := native.Drive()
		if err != nil {
			return nil, err
		}

		if !ns.drives.Exists(ctx, letter) {
			return nil, fmt.Errorf("%w: %s", data.ErrDriveNotFound, letter)
		}

		return &Entry{Name: letter.String(), Path: data.Drive(letter), IsDir: true}, nil
	}

	entry, err := ns.reader.Stat(ctx, native)
	if err != nil {
		return nil, err
	}

	virtual, err := ns.translator.Unresolve(native)
	if err != nil {
		return nil, err
	}
	entry.Path = virtual

	return entry, nil
}

// osReader reads the host filesystem directly.
type osReader struct{}

func (osReader) ReadDir(ctx context.Context, native data.NativePath) ([]*Entry, error) {
	if native.IsSentinel() {
		return nil, data.ErrRootVirtual
	}

	children, err := os.ReadDir(native.String())
	if err != nil {
		return nil, mapFsError(err)
	}

	entries := make([]*Entry, 0, len(children))
	for _, child := range children {
		entry := &Entry{
			Name:  child.Name(),
			IsDir: child.IsDir(),
		}

		if info, err := child.Info(); err == nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (osReader) Stat(ctx context.Context, native data.NativePath) (*Entry, error) {
	if native.IsSentinel() {
		return nil, data.ErrRootVirtual
	}

	info, err := os.Stat(native.String())
	if err != nil {
		return nil, mapFsError(err)
	}

	return &Entry{
		Name:    info.Name(),
		Size:    info.Size(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
	}, nil
}

func mapFsError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", data.ErrNotExist, err)
	}
	return err
}
