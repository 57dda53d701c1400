package gen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// LockFile is the name of the lock file created in the source root.
const LockFile = ".modulegen.lock"

// Lock takes the workspace lock of the source root, so concurrent runs do
// not interleave their aggregator edits. It gives up with ErrLocked after
// wait. The returned function releases the lock.
func Lock(ctx context.Context, root string, wait time.Duration) (func() error, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	fl := flock.New(filepath.Join(root, LockFile))
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	ok, err := fl.TryLockContext(ctx, 50*time.Millisecond)
	switch {
	case errors.Is(err, context.DeadlineExceeded) || (err == nil && !ok):
		return nil, ErrLocked
	case err != nil:
		return nil, err
	}
	return fl.Unlock, nil
}
