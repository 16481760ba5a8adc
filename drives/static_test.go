package drives_test

import (
	"context"
	"testing"

	"github.com/deotya/unidrive/data"
	"github.com/deotya/unidrive/drives"
)

// TestStatic_MountVisibility verifies that additions and removals are visible
// immediately: existence is never cached.
func TestStatic_MountVisibility(t *testing.T) {
	ctx := context.Background()
	set := drives.NewStatic('C')

	if !set.Exists(ctx, 'C') {
		t.Error("C should exist after construction")
	}
	if set.Exists(ctx, 'D') {
		t.Error("D should not exist yet")
	}

	set.Add(drives.DriveInfo{Letter: 'D', Removable: true})
	if !set.Exists(ctx, 'D') {
		t.Error("D should exist after Add")
	}

	set.Remove('C')
	if set.Exists(ctx, 'C') {
		t.Error("C should not exist after Remove")
	}
}

// TestStatic_ListOrder verifies letter-ordered listing and root defaulting.
func TestStatic_ListOrder(t *testing.T) {
	ctx := context.Background()

	set := drives.NewStatic()
	set.Add(drives.DriveInfo{Letter: 'E'})
	set.Add(drives.DriveInfo{Letter: 'C', TotalSpace: 256 << 30})
	set.Add(drives.DriveInfo{Letter: 'D'})

	infos, err := set.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(infos) != 3 {
		t.Fatalf("Expected 3 drives, got %d", len(infos))
	}

	for i, expected := range []data.DriveLetter{'C', 'D', 'E'} {
		if infos[i].Letter != expected {
			t.Errorf("Position %d: got %s, expected %s", i, infos[i].Letter, expected)
		}
	}

	if infos[0].Root != `C:\` {
		t.Errorf("Add should default the native root, got %q", infos[0].Root)
	}
}

// TestSystem_Exists verifies the degrade-to-absent contract for letters that
// cannot be mounted on the build host.
func TestSystem_Exists(t *testing.T) {
	ctx := context.Background()
	enum := drives.System()

	// A listed volume must also report existence; the reverse direction
	// cannot be asserted portably.
	infos, err := enum.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	for _, info := range infos {
		if !enum.Exists(ctx, info.Letter) {
			t.Errorf("Listed drive %s should exist", info.Letter)
		}
	}
}
