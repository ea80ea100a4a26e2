package persistence

import (
	"fmt"
	json "github.com/goccy/go-json"
	"gritd/internal/models"
	"gritd/internal/persistence/interfaces"
	"gritd/internal/providers"
	"gritd/internal/structures"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const archiveSuffix = ".snapshot.zst"

// Archive keeps compressed copies of snapshots that a reset or an import is
// about to replace. Entries older than the TTL are dropped by Prune.
type Archive struct {
	mu         sync.Mutex
	dir        string
	ttl        time.Duration
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	clock      providers.Clock
}

// NewArchive returns a no-op archive when no directory is configured.
func NewArchive(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger, clock providers.Clock) interfaces.ArchiveInterface {
	if conf.Persistence.ArchiveDir == "" {
		logger.Infof(providers.TypeApp, "Snapshot archive disabled")
		return &noopArchive{}
	}
	return &Archive{
		dir:        conf.Persistence.ArchiveDir,
		ttl:        conf.Persistence.ArchiveTTL,
		compressor: compressor,
		logger:     logger,
		clock:      clock,
	}
}

func (a *Archive) Store(reason string, snapshot *models.Snapshot) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	compressed, err := a.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return err
	}
	name := fmt.Sprintf("%d-%s%s", a.clock.Now().UnixNano(), reason, archiveSuffix)
	path := filepath.Join(a.dir, name)
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		return err
	}
	a.logger.Infof(providers.TypeStore, "Archived snapshot %s", name)
	return nil
}

// List returns archived snapshots, newest first.
func (a *Archive) List() ([]interfaces.ArchiveEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	files, err := filepath.Glob(filepath.Join(a.dir, "*"+archiveSuffix))
	if err != nil {
		return nil, err
	}
	entries := make([]interfaces.ArchiveEntry, 0, len(files))
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		name := filepath.Base(file)
		entries = append(entries, interfaces.ArchiveEntry{
			Name:   name,
			Reason: archiveReason(name),
			Size:   info.Size(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return archiveStamp(entries[i].Name) > archiveStamp(entries[j].Name)
	})
	return entries, nil
}

func (a *Archive) Load(name string) (*models.Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if name != filepath.Base(name) || !strings.HasSuffix(name, archiveSuffix) {
		return nil, fmt.Errorf("invalid archive name %q", name)
	}
	data, err := os.ReadFile(filepath.Join(a.dir, name))
	if err != nil {
		return nil, err
	}
	decompressed, err := a.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}
	return DecodeSnapshot(decompressed)
}

// Prune removes archives older than the TTL. A zero TTL keeps everything.
func (a *Archive) Prune() error {
	if a.ttl <= 0 {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	files, err := filepath.Glob(filepath.Join(a.dir, "*"+archiveSuffix))
	if err != nil {
		return err
	}
	cutoff := a.clock.Now().Add(-a.ttl).UnixNano()
	for _, file := range files {
		if archiveStamp(filepath.Base(file)) < cutoff {
			if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
				a.logger.Errorf(providers.TypeStore, "Failed to prune archive %s: %s", file, err)
			}
		}
	}
	return nil
}

// archiveStamp extracts the creation time from "<unixnano>-<reason>.snapshot.zst".
func archiveStamp(name string) int64 {
	stamp, _, _ := strings.Cut(name, "-")
	var n int64
	if _, err := fmt.Sscanf(stamp, "%d", &n); err != nil {
		return 0
	}
	return n
}

func archiveReason(name string) string {
	_, rest, _ := strings.Cut(name, "-")
	return strings.TrimSuffix(rest, archiveSuffix)
}

type noopArchive struct{}

func (n *noopArchive) Store(_ string, _ *models.Snapshot) error { return nil }
func (n *noopArchive) List() ([]interfaces.ArchiveEntry, error) {
	return []interfaces.ArchiveEntry{}, nil
}
func (n *noopArchive) Load(name string) (*models.Snapshot, error) {
	return nil, fmt.Errorf("archive disabled")
}
func (n *noopArchive) Prune() error { return nil }
