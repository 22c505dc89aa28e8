package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"stockroom/internal/client/api"
	"stockroom/internal/client/credcache"
)

// Register creates an account on the server and caches the issued session.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	s, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	return a.adoptSession(s)
}

// Login authenticates and caches the fresh session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return a.adoptSession(s)
}

func (a *App) adoptSession(s *api.Session) error {
	a.user = &s.User
	if err := a.creds.Save(credcache.Credentials{User: s.User, Token: s.Token}); err != nil {
		// Session still works for this run even if caching failed.
		fmt.Println("warning: could not cache credentials:", err)
	}
	fmt.Printf("Logged in as %s\n", s.User.Email)
	return nil
}

// Logout drops the session and clears the credential cache. The token is
// stateless, so there is nothing to tell the server.
func (a *App) Logout(_ context.Context) error {
	a.dropSession()
	fmt.Println("Logged out")
	return nil
}

// refreshAuth converts an unauthorized answer into a logged-out state so the
// user gets a clear prompt instead of repeated failures.
func (a *App) refreshAuth(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		a.dropSession()
		return fmt.Errorf("session expired, please login again")
	}
	return err
}
