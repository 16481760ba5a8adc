package drives

import (
	"context"
	"sync"

	"github.com/tidwall/btree"

	"github.com/deotya/unidrive/data"
)

// Static is an Enumerator over a fixed, mutable set of volumes. It backs
// tests and embedders that define their own volume table. The ordered map
// keeps List output in letter order without re-sorting.
type Static struct {
	mu     sync.RWMutex
	drives *btree.Map[data.DriveLetter, DriveInfo]
}

// NewStatic builds a Static enumerator over the given letters.
func NewStatic(letters ...data.DriveLetter) *Static {
	s := &Static{
		drives: btree.NewMap[data.DriveLetter, DriveInfo](0),
	}

	for _, letter := range letters {
		s.Add(DriveInfo{Letter: letter, Root: letter.Root()})
	}

	return s
}

// Add mounts or replaces a volume. An empty Root is filled from the letter.
func (s *Static) Add(info DriveInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if info.Root == "" {
		info.Root = info.Letter.Root()
	}

	s.drives.Set(info.Letter, info)
}

// Remove unmounts a volume. Removing an absent letter is a no-op.
func (s *Static) Remove(letter data.DriveLetter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drives.Delete(letter)
}

func (s *Static) List(ctx context.Context) ([]DriveInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]DriveInfo, 0, s.drives.Len())
	s.drives.Scan(func(_ data.DriveLetter, info DriveInfo) bool {
		infos = append(infos, info)
		return true
	})

	return infos, nil
}

func (s *Static) Exists(ctx context.Context, letter data.DriveLetter) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.drives.Get(letter)
	return exists
}
