package database

import (
	"context"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestUserIsFoundByEmailRegardlessOfCase(t *testing.T) {
	is, ctx, r := testSetupUserRepository(t)

	is.NoErr(r.CreateUser(ctx, User{ID: "u1", Email: "Maria@Example.com", PasswordHash: "x", Role: "staff"}))

	u, err := r.GetUserByEmail(ctx, "maria@example.COM")
	is.NoErr(err)
	is.Equal(u.ID, "u1")

	_, err = r.GetUserByEmail(ctx, "joao@example.com")
	is.Equal(err, ErrNotFound)
}

func TestExpiredSessionIsNotFound(t *testing.T) {
	is, ctx, r := testSetupUserRepository(t)

	is.NoErr(r.CreateSession(ctx, Session{ID: "live", UserID: "u1", ExpiresAt: time.Now().UTC().Add(time.Hour)}))
	is.NoErr(r.CreateSession(ctx, Session{ID: "old", UserID: "u1", ExpiresAt: time.Now().UTC().Add(-time.Hour)}))

	s, err := r.GetSession(ctx, "live")
	is.NoErr(err)
	is.Equal(s.UserID, "u1")

	_, err = r.GetSession(ctx, "old")
	is.Equal(err, ErrNotFound)
}

func TestDeletedSessionIsNotFound(t *testing.T) {
	is, ctx, r := testSetupUserRepository(t)

	is.NoErr(r.CreateSession(ctx, Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().UTC().Add(time.Hour)}))
	is.NoErr(r.DeleteSession(ctx, "s1"))

	_, err := r.GetSession(ctx, "s1")
	is.Equal(err, ErrNotFound)
}

func TestDeleteExpiredSessions(t *testing.T) {
	is, ctx, r := testSetupUserRepository(t)

	now := time.Now().UTC()
	is.NoErr(r.CreateSession(ctx, Session{ID: "live", UserID: "u1", ExpiresAt: now.Add(time.Hour)}))
	is.NoErr(r.CreateSession(ctx, Session{ID: "old", UserID: "u1", ExpiresAt: now.Add(-time.Hour)}))
	is.NoErr(r.CreateSession(ctx, Session{ID: "older", UserID: "u2", ExpiresAt: now.Add(-2 * time.Hour)}))

	next, err := r.NextSessionExpiry(ctx)
	is.NoErr(err)
	is.True(next.Before(now))

	deleted, err := r.DeleteExpiredSessions(ctx, now)
	is.NoErr(err)
	is.Equal(deleted, int64(2))

	next, err = r.NextSessionExpiry(ctx)
	is.NoErr(err)
	is.True(next.After(now))

	is.NoErr(r.DeleteSession(ctx, "live"))

	_, err = r.NextSessionExpiry(ctx)
	is.Equal(err, ErrNotFound)
}

func testSetupUserRepository(t *testing.T) (*is.I, context.Context, UserRepository) {
	is := is.New(t)
	ctx := context.Background()

	r, err := NewUserRepository(NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	return is, ctx, r
}
