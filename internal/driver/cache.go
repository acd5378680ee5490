package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"ferret/internal/diag"
	"ferret/internal/source"
)

// Increment when the CheckPayload format changes.
const checkCacheSchemaVersion uint16 = 1

// CheckCache stores per-file check results on disk, keyed by the sha256 of
// the file content. A hit for an unchanged file replays its diagnostics
// without re-parsing. Thread-safe.
type CheckCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedNote struct {
	Message string
	Start   uint32
	End     uint32
}

type cachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []cachedNote
}

// CheckPayload is the serialized check result for one file.
type CheckPayload struct {
	Schema      uint16
	Path        string
	Diagnostics []cachedDiagnostic
}

// OpenCheckCache initializes the cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenCheckCache(app string) (*CheckCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &CheckCache{dir: dir}, nil
}

func (c *CheckCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "check", hex.EncodeToString(key[:])+".mp")
}

// Put serializes the bag for a file content hash. The write goes through a
// temp file and an atomic rename.
func (c *CheckCache) Put(key [32]byte, path string, bag *diag.Bag) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := CheckPayload{
		Schema:      checkCacheSchemaVersion,
		Path:        path,
		Diagnostics: encodeDiagnostics(bag),
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get looks up a cached result. A schema mismatch reads as a miss.
func (c *CheckCache) Get(key [32]byte) (*CheckPayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload CheckPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != checkCacheSchemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// Replay rebuilds a Bag for fileID from a cached payload.
func (p *CheckPayload) Replay(fileID source.FileID, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range p.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: fileID, Start: cd.Start, End: cd.End},
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: n.Start, End: n.End},
				Msg:  n.Message,
			})
		}
		bag.Add(d)
	}
	return bag
}

func encodeDiagnostics(bag *diag.Bag) []cachedDiagnostic {
	items := bag.Items()
	out := make([]cachedDiagnostic, 0, len(items))
	for _, d := range items {
		cd := cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{
				Message: n.Msg,
				Start:   n.Span.Start,
				End:     n.Span.End,
			})
		}
		out = append(out, cd)
	}
	return out
}
