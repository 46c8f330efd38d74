package session

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/vedicvision/vvadmin/internal/errors"
)

// cookieFile is where the backend session cookie survives between
// command invocations.
const cookieFile = "cookies.json"

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PersistentJar is an http.CookieJar that snapshots the cookies for one
// backend origin to disk, so the session cookie issued by login is still
// presented by the next command's process. Only name/value pairs are
// kept; the backend re-evaluates expiry on every request anyway.
type PersistentJar struct {
	mu   sync.Mutex
	jar  http.CookieJar
	base *url.URL
	path string
}

// NewPersistentJar creates a jar backed by dir/cookies.json, scoped to
// the given backend origin. A missing or unreadable file starts empty.
func NewPersistentJar(dir string, baseURL string) (*PersistentJar, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "invalid backend URL", err)
	}

	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	j := &PersistentJar{
		jar:  inner,
		base: base,
		path: filepath.Join(dir, cookieFile),
	}
	j.restore()
	return j, nil
}

// Cookies implements http.CookieJar
func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.jar.Cookies(u)
}

// SetCookies implements http.CookieJar and snapshots the result to disk
func (j *PersistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jar.SetCookies(u, cookies)
	j.persist()
}

// Clear drops every stored cookie, in memory and on disk
func (j *PersistentJar) Clear() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	inner, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	j.jar = inner

	if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot remove cookie file", err)
	}
	return nil
}

func (j *PersistentJar) restore() {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return
	}

	cookies := make([]*http.Cookie, len(stored))
	for i, c := range stored {
		cookies[i] = &http.Cookie{Name: c.Name, Value: c.Value}
	}
	j.jar.SetCookies(j.base, cookies)
}

func (j *PersistentJar) persist() {
	cookies := j.jar.Cookies(j.base)
	stored := make([]storedCookie, len(cookies))
	for i, c := range cookies {
		stored[i] = storedCookie{Name: c.Name, Value: c.Value}
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(j.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(j.path, data, 0o600)
}
