package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
)

// Capabilities are feature switches resolved once when the session loads,
// instead of being re-derived from profile strings at render time.
type Capabilities struct {
	// KKStock unlocks the KK stock column for the vendors that carry it.
	KKStock bool `json:"kk_stock"`
}

// Context holds the signed-in vendor's token and profile for the lifetime
// of the process. It is the process-wide analog of the browser's local
// storage: written by the login flow, read by everything else.
type Context struct {
	path string

	mu     sync.RWMutex
	token  string
	vendor entities.Vendor
	caps   Capabilities
	loaded bool
}

func New(path string) *Context {
	return &Context{path: path}
}

type stored struct {
	Token  string          `json:"token"`
	Vendor entities.Vendor `json:"vendor"`
}

// Load restores a previously persisted session. A missing store file just
// leaves the context unauthenticated.
func (c *Context) Load() error {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session store: %w", err)
	}

	var s stored
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse session store: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = s.Token
	c.vendor = s.Vendor
	c.caps = resolveCapabilities(s.Vendor)
	c.loaded = s.Token != ""
	return nil
}

// Set installs a fresh login and persists it.
func (c *Context) Set(token string, vendor entities.Vendor) error {
	data, err := json.Marshal(stored{Token: token, Vendor: vendor})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create session dir: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.vendor = vendor
	c.caps = resolveCapabilities(vendor)
	c.loaded = true
	return nil
}

// Clear forgets the session in memory and on disk.
func (c *Context) Clear() error {
	if err := os.Remove(c.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session store: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.vendor = entities.Vendor{}
	c.caps = Capabilities{}
	c.loaded = false
	return nil
}

// Token implements hopapi.TokenSource.
func (c *Context) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Context) Vendor() (entities.Vendor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vendor, c.loaded
}

func (c *Context) Capabilities() Capabilities {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.caps
}

func (c *Context) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func resolveCapabilities(v entities.Vendor) Capabilities {
	return Capabilities{
		KKStock: strings.HasPrefix(v.Name, "KK"),
	}
}
