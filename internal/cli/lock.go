package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"github.com/leeovery/todol/internal/storage"
)

// lockRetryDelay is how often a contended lock is retried until the timeout.
const lockRetryDelay = 10 * time.Millisecond

// lockMode selects how an invocation coordinates with other todol processes.
type lockMode int

const (
	lockNone lockMode = iota
	lockShared
	lockExclusive
)

func (m lockMode) String() string {
	if m == lockExclusive {
		return "exclusive"
	}
	return "shared"
}

// withLock runs fn while holding the advisory lock beside listPath. The lock
// only coordinates cooperating todol processes; other writers are not
// excluded. lockNone runs fn directly.
func withLock(fc FormatConfig, listPath string, mode lockMode, timeout time.Duration, fn func() error) error {
	if mode == lockNone {
		return fn()
	}

	lockPath := storage.LockPath(listPath)
	fl := flock.New(lockPath)

	fc.Logger.Log(fmt.Sprintf("lock: acquiring %s lock", mode))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var locked bool
	var err error
	if mode == lockExclusive {
		locked, err = fl.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = fl.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil || !locked {
		return fmt.Errorf("could not acquire lock on %s - another process may be using todol", lockPath)
	}
	fc.Logger.Log(fmt.Sprintf("lock: %s lock acquired", mode))
	defer func() {
		fl.Unlock()
		fc.Logger.Log(fmt.Sprintf("lock: %s lock released", mode))
	}()

	return fn()
}
