package cmd

import (
	"context"
	"net/http"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/config"
	"github.com/vedicvision/vvadmin/internal/errors"
	"github.com/vedicvision/vvadmin/internal/log"
	"github.com/vedicvision/vvadmin/internal/session"
	"github.com/vedicvision/vvadmin/internal/tui"
	"github.com/vedicvision/vvadmin/internal/ux"
)

// adminSession bundles the pieces a protected command works with
type adminSession struct {
	store  *session.Store
	client *api.Client
	jar    *session.PersistentJar
}

// newSession builds the client with persisted credentials and an
// initialized session store. The store state reflects revalidation against
// the backend; callers decide whether unauthenticated is an error.
func newSession(ctx context.Context) (*adminSession, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	jar, err := session.NewPersistentJar(dir, cfg.APIURL)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.APIURL,
		api.WithHTTPClient(&http.Client{Jar: jar}),
		api.WithLogger(log.DefaultLogger()),
	)

	store := session.NewStore(client, session.NewIdentityCache(dir), log.DefaultLogger())
	store.SetCredentialStore(jar)
	store.Initialize(ctx)

	return &adminSession{store: store, client: client, jar: jar}, nil
}

// requireAdmin returns a revalidated admin session or a not-logged-in error
func requireAdmin(ctx context.Context) (*adminSession, error) {
	s, err := newSession(ctx)
	if err != nil {
		return nil, err
	}
	if !s.store.IsAuthenticated() {
		return nil, errors.NewNotLoggedInError()
	}
	return s, nil
}

// outputFormat resolves the effective output format for list commands
func outputFormat() string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output
}

// newFormatter builds the formatter for the effective output format
func newFormatter() (ux.Formatter, error) {
	return ux.NewFormatter(outputFormat(), nil)
}

// confirm asks before a destructive operation unless --yes was passed
func confirm(message string) bool {
	if flagYes {
		return true
	}
	confirmed, err := tui.ConfirmDestructive(message)
	if err != nil {
		return false
	}
	return confirmed
}
