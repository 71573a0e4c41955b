package commands

import (
	"fmt"

	"github.com/gluster/glusterxattr/pkg/config"
	"github.com/gluster/glusterxattr/pkg/metrics"
	_ "github.com/gluster/glusterxattr/pkg/metrics/prometheus"
	"github.com/gluster/glusterxattr/pkg/store"
	"github.com/gluster/glusterxattr/pkg/store/badger"
	"github.com/gluster/glusterxattr/pkg/store/instrumented"
	"github.com/gluster/glusterxattr/pkg/store/memory"
	"github.com/gluster/glusterxattr/pkg/store/osxattr"
)

// openStore builds the configured backend wrapped with instrumentation.
// The returned closer is never nil.
func openStore(cfg *config.Config, m metrics.StoreMetrics) (store.AttributeStore, func() error, error) {
	var (
		s      store.AttributeStore
		closer = func() error { return nil }
	)

	switch store.Type(cfg.Store.Backend) {
	case store.TypeXattr:
		s = osxattr.New()
	case store.TypeBadger:
		db, err := badger.New(badger.Config{
			Dir:              cfg.Store.Badger.Path,
			CheckPaths:       cfg.Store.Badger.CheckPathsEnabled(),
			ValueLogFileSize: cfg.Store.Badger.ValueLogFileSize.Int64(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		s = db
		closer = db.Close
	case store.TypeMemory:
		s = memory.New()
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}

	return instrumented.New(s, cfg.Store.Backend, m), closer, nil
}
