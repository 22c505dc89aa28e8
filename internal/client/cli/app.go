// Package cli implements the interactive stockctl client: a small REPL over
// the stockroom REST API. Session credentials are cached locally so a token
// issued in one run is replayed in the next until it expires or the user
// logs out.
package cli

import (
	"bufio"
	"context"
	"errors"
	"log"
	"os"

	"stockroom/internal/client/api"
	"stockroom/internal/client/config"
	"stockroom/internal/client/credcache"
	"stockroom/internal/domain"
)

// App holds the client's whole view state: the current session, the last
// fetched product collection, and the active list selections.
type App struct {
	config *config.Config
	client *api.Client
	creds  credcache.Cache

	user     *domain.User
	products []domain.ProductView
	view     viewState

	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerAddr),
		creds:  credcache.NewFileCache(c.CredFile),
		reader: bufio.NewReader(os.Stdin),
	}
}

// Rehydrate installs a previously cached session, if any. A missing cache is
// not an error; the user simply starts logged out.
func (a *App) Rehydrate() {
	cached, err := a.creds.Load()
	if err != nil {
		if !errors.Is(err, credcache.ErrNoCredentials) {
			log.Printf("could not read credential cache: %v", err)
		}
		return
	}
	a.user = &cached.User
	a.client.SetToken(cached.Token)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// dropSession clears in-memory and cached credentials, e.g. after the server
// rejects an expired token.
func (a *App) dropSession() {
	a.user = nil
	a.client.SetToken("")
	_ = a.creds.Clear()
}

func (a *App) Run(ctx context.Context) {
	a.Rehydrate()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.user != nil {
		return a.user.Email
	}
	return "not logged in"
}
