package session

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/errors"
)

// cacheFileName is the fixed key under which the last-known admin identity
// is persisted. The cached identity is a hint only, never authoritative;
// it exists so protected commands can greet the admin while revalidation
// is in flight.
const cacheFileName = "admin_user.json"

// cacheEntry is the on-disk shape: the identity plus a blake3 checksum of
// its canonical JSON. A checksum mismatch means the file was edited by
// hand or corrupted, and the hint is discarded.
type cacheEntry struct {
	Identity json.RawMessage `json:"identity"`
	Checksum string          `json:"checksum"`
}

// IdentityCache persists the last-known admin identity to a single file
type IdentityCache struct {
	dir string
}

// NewIdentityCache creates a cache rooted at dir
func NewIdentityCache(dir string) *IdentityCache {
	return &IdentityCache{dir: dir}
}

// Path returns the cache file path
func (c *IdentityCache) Path() string {
	return filepath.Join(c.dir, cacheFileName)
}

// Save persists the identity with an integrity checksum
func (c *IdentityCache) Save(user *api.AdminUser) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot create cache directory", err)
	}

	identity, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "cannot marshal identity", err)
	}

	sum := blake3.Sum256(identity)
	entry := cacheEntry{
		Identity: identity,
		Checksum: hex.EncodeToString(sum[:]),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "cannot marshal cache entry", err)
	}

	if err := os.WriteFile(c.Path(), data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot write identity cache", err)
	}
	return nil
}

// Load reads the cached identity. It returns (nil, nil) when no cache
// exists, and an error when the file is unreadable or fails its checksum.
func (c *IdentityCache) Load() (*api.AdminUser, error) {
	data, err := os.ReadFile(c.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "cannot read identity cache", err)
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, errors.NewFileUnmarshalError(c.Path(), "JSON", err)
	}

	sum := blake3.Sum256(entry.Identity)
	if hex.EncodeToString(sum[:]) != entry.Checksum {
		return nil, errors.New(errors.ErrCodeAuthCacheInvalid, "identity cache failed integrity check")
	}

	var user api.AdminUser
	if err := json.Unmarshal(entry.Identity, &user); err != nil {
		return nil, errors.NewFileUnmarshalError(c.Path(), "JSON", err)
	}
	return &user, nil
}

// Clear removes the cached identity. Missing files are not an error.
func (c *IdentityCache) Clear() error {
	if err := os.Remove(c.Path()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot remove identity cache", err)
	}
	return nil
}
