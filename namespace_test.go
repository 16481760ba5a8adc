package unidrive_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/deotya/unidrive"
	"github.com/deotya/unidrive/data"
	"github.com/deotya/unidrive/drives"
	"github.com/deotya/unidrive/log"
)

// fakeReader serves canned native listings so listing virtualization can be
// tested without touching the host filesystem.
type fakeReader struct {
	dirs map[data.NativePath][]*unidrive.Entry
}

func (f *fakeReader) ReadDir(ctx context.Context, native data.NativePath) ([]*unidrive.Entry, error) {
	entries, exists := f.dirs[native]
	if !exists {
		return nil, fmt.Errorf("%w: %s", data.ErrNotExist, native)
	}

	return entries, nil
}

func (f *fakeReader) Stat(ctx context.Context, native data.NativePath) (*unidrive.Entry, error) {
	parent := native.Parent()
	for _, entry := range f.dirs[parent] {
		if parent.Join(entry.Name) == native {
			return entry, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", data.ErrNotExist, native)
}

func newListingNamespace(t *testing.T) *unidrive.Namespace {
	set := drives.NewStatic()
	set.Add(drives.DriveInfo{Letter: 'C', TotalSpace: 512 << 30, FreeSpace: 128 << 30})
	set.Add(drives.DriveInfo{Letter: 'D', TotalSpace: 1 << 40, FreeSpace: 1 << 39, Removable: true})

	reader := &fakeReader{
		dirs: map[data.NativePath][]*unidrive.Entry{
			`C:\`: {
				{Name: "Users", IsDir: true},
				{Name: "pagefile.sys", Size: 4096, ModTime: time.Unix(1700000000, 0)},
			},
			`C:\Users`: {
				{Name: "docs", IsDir: true},
			},
		},
	}

	ns, err := unidrive.NewNamespace(
		unidrive.WithEnumerator(set),
		unidrive.WithDirectoryReader(reader),
		unidrive.WithLogLevel(log.Error),
		unidrive.WithoutTerminalLog(),
	)
	if err != nil {
		t.Fatalf("Failed to initialize namespace: %v", err)
	}

	return ns
}

// TestNamespace_ReadDirectoryRoot verifies that listing the virtual root
// synthesizes one directory entry per mounted drive, in letter order.
func TestNamespace_ReadDirectoryRoot(t *testing.T) {
	ctx := context.Background()
	ns := newListingNamespace(t)

	entries, err := ns.ReadDirectory(ctx, data.Sentinel)
	if err != nil {
		t.Fatalf("ReadDirectory(sentinel) failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 drive entries, got %d", len(entries))
	}

	if entries[0].Name != "C" || entries[1].Name != "D" {
		t.Errorf("Expected letter order C, D; got %s, %s", entries[0].Name, entries[1].Name)
	}

	for _, entry := range entries {
		if !entry.IsDir {
			t.Errorf("Drive entry %s should be a directory", entry.Name)
		}
		if entry.Size == 0 {
			t.Errorf("Drive entry %s should carry the volume size", entry.Name)
		}
	}

	if entries[0].Path.String() != "/C" {
		t.Errorf("Drive entry virtual address = %q, expected /C", entries[0].Path)
	}
}

// TestNamespace_ReadDirectoryNested verifies that native listings come back
// with correct virtual addresses on every child.
func TestNamespace_ReadDirectoryNested(t *testing.T) {
	ctx := context.Background()
	ns := newListingNamespace(t)

	entries, err := ns.ReadDirectory(ctx, `C:\`)
	if err != nil {
		t.Fatalf("ReadDirectory(C:\\) failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	expected := map[string]string{
		"Users":        "/C/Users",
		"pagefile.sys": "/C/pagefile.sys",
	}

	for _, entry := range entries {
		virtual, exists := expected[entry.Name]
		if !exists {
			t.Errorf("Unexpected entry %q", entry.Name)
			continue
		}

		if entry.Path.String() != virtual {
			t.Errorf("Entry %q virtual address = %q, expected %q", entry.Name, entry.Path, virtual)
		}
	}
}

// TestNamespace_ReadDirectoryMissing verifies error passthrough for unknown
// native directories.
func TestNamespace_ReadDirectoryMissing(t *testing.T) {
	ctx := context.Background()
	ns := newListingNamespace(t)

	if _, err := ns.ReadDirectory(ctx, `C:\missing`); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

// TestNamespace_StatEntry verifies stat virtualization: the root and mounted
// drive roots are synthesized directories, unmounted drive roots fail.
func TestNamespace_StatEntry(t *testing.T) {
	ctx := context.Background()
	ns := newListingNamespace(t)

	t.Run("sentinel", func(tst *testing.T) {
		entry, err := ns.StatEntry(ctx, data.Sentinel)
		if err != nil {
			tst.Fatalf("StatEntry(sentinel) failed: %v", err)
		}

		if !entry.IsDir || !entry.Path.IsRoot() {
			tst.Errorf("Root entry should be a directory at /, got %+v", entry)
		}
	})

	t.Run("mounted drive root", func(tst *testing.T) {
		entry, err := ns.StatEntry(ctx, `D:\`)
		if err != nil {
			tst.Fatalf("StatEntry(D:\\) failed: %v", err)
		}

		if !entry.IsDir || entry.Path.String() != "/D" {
			tst.Errorf("Drive entry should be a directory at /D, got %+v", entry)
		}
	})

	t.Run("unmounted drive root", func(tst *testing.T) {
		if _, err := ns.StatEntry(ctx, `E:\`); !errors.Is(err, data.ErrDriveNotFound) {
			tst.Errorf("Expected ErrDriveNotFound, got %v", err)
		}
	})

	t.Run("nested entry", func(tst *testing.T) {
		entry, err := ns.StatEntry(ctx, `C:\Users`)
		if err != nil {
			tst.Fatalf("StatEntry(C:\\Users) failed: %v", err)
		}

		if !entry.IsDir || entry.Path.String() != "/C/Users" {
			tst.Errorf("Expected directory at /C/Users, got %+v", entry)
		}
	})
}

// TestNamespace_ResolveConcrete verifies that file-addressing commands cannot
// target the virtual root.
func TestNamespace_ResolveConcrete(t *testing.T) {
	ctx := context.Background()
	ns := newListingNamespace(t)

	if _, err := ns.ResolveConcrete(ctx, "/", data.Sentinel); !errors.Is(err, data.ErrRootVirtual) {
		t.Errorf("Expected ErrRootVirtual, got %v", err)
	}

	native, err := ns.ResolveConcrete(ctx, "/C/Users", data.Sentinel)
	if err != nil {
		t.Fatalf("ResolveConcrete(/C/Users) failed: %v", err)
	}

	if native != `C:\Users` {
		t.Errorf("Expected C:\\Users, got %q", native)
	}
}

// TestNamespace_SessionRegistry verifies open/lookup/close bookkeeping.
func TestNamespace_SessionRegistry(t *testing.T) {
	ns := newTestNamespace(t, 'C')

	first := ns.OpenSession()
	second := ns.OpenSession()

	if _, exists := ns.Session(first.ID()); !exists {
		t.Errorf("Session %s not found after open", first.ID())
	}

	if sessions := ns.Sessions(); len(sessions) != 2 {
		t.Errorf("Expected 2 open sessions, got %d", len(sessions))
	}

	if err := ns.CloseSession(first.ID()); err != nil {
		t.Fatalf("CloseSession failed: %v", err)
	}

	if _, exists := ns.Session(first.ID()); exists {
		t.Errorf("Session %s still registered after close", first.ID())
	}

	if err := ns.CloseSession(first.ID()); !errors.Is(err, data.ErrNotExist) {
		t.Errorf("Expected ErrNotExist on double close, got %v", err)
	}

	if err := ns.CloseSession(second.ID()); err != nil {
		t.Fatalf("CloseSession failed: %v", err)
	}
}
