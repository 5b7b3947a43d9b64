package xdata

import (
	_ "embed"
	"sync"

	"github.com/sirupsen/logrus"
)

//go:embed assets/xraydb.json.zst
var embeddedArtifact []byte

// Handle is the published, immutable result of the one-time load: the
// decoded database plus its derived index maps.
type Handle struct {
	DB    *Database
	Index *Index
}

var (
	// loadOnce guards the first-access decompress+decode+index pipeline: the
	// first caller from any goroutine does the work, and every later
	// caller — concurrent or not — observes the already-published Handle.
	loadOnce   sync.Once
	loadResult *Handle
	loadErr    error
)

// Load decompresses and decodes the embedded artifact and builds its lookup
// indices exactly once per process. Every call after the first returns the
// same *Handle (or the same error) without redoing any work. A non-nil
// error here means the process cannot serve any lookup — the caller is
// expected to treat it as fatal.
func Load() (*Handle, error) {
	loadOnce.Do(func() {
		db, err := Decode(embeddedArtifact)
		if err != nil {
			loadErr = err
			logrus.WithError(err).Error("xraydb: failed to load embedded data artifact")
			return
		}
		loadResult = &Handle{
			DB:    db,
			Index: BuildIndex(db),
		}
		logrus.WithFields(logrus.Fields{
			"elements":    len(db.Elements),
			"levels":      len(db.XrayLevels),
			"transitions": len(db.XrayTransitions),
			"chantler":    len(db.Chantler),
		}).Debug("xraydb: embedded data artifact loaded")
	})
	return loadResult, loadErr
}
