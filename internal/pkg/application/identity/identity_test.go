package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	db "github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/repositories/database"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func TestSignUpThenSignIn(t *testing.T) {
	is, ctx, svc := testSetup(t, Config{AdminEmails: []string{"Admin@Example.com"}})

	s, err := svc.SignUp(ctx, "admin@example.com", "segredo123")
	is.NoErr(err)
	is.True(s.Token != "")
	is.Equal(s.Role, RoleAdmin)

	s, err = svc.SignIn(ctx, " ADMIN@example.com", "segredo123")
	is.NoErr(err)
	is.Equal(s.Email, "admin@example.com")

	token, err := svc.TokenAuth().Decode(s.Token)
	is.NoErr(err)
	is.Equal(token.Subject(), s.UserID)
	is.True(token.JwtID() != "")

	_, err = svc.Authenticate(ctx, token.JwtID())
	is.NoErr(err)
}

func TestSignInWithWrongPassword(t *testing.T) {
	is, ctx, svc := testSetup(t, Config{AutoProvision: true})

	_, err := svc.SignUp(ctx, "maria@example.com", "segredo123")
	is.NoErr(err)

	_, err = svc.SignIn(ctx, "maria@example.com", "errado")
	is.True(errors.Is(err, ErrInvalidCredentials)) // a known account is never provisioned again
}

func TestSignInToUnknownAccount(t *testing.T) {
	is, ctx, svc := testSetup(t, Config{})

	_, err := svc.SignIn(ctx, "joao@example.com", "segredo123")
	is.True(errors.Is(err, ErrAccountNotFound))
}

func TestSignInProvisionsUnknownAccountWhenEnabled(t *testing.T) {
	is, ctx, svc := testSetup(t, Config{AutoProvision: true})

	s, err := svc.SignIn(ctx, "joao@example.com", "segredo123")
	is.NoErr(err)
	is.Equal(s.Role, RoleStaff)
}

func TestSignUpValidation(t *testing.T) {
	is, ctx, svc := testSetup(t, Config{})

	_, err := svc.SignUp(ctx, "not-an-email", "segredo123")
	is.True(errors.Is(err, ErrInvalidEmail))

	_, err = svc.SignUp(ctx, "ana@example.com", "12345")
	is.True(errors.Is(err, ErrWeakPassword))

	_, err = svc.SignUp(ctx, "ana@example.com", "123456")
	is.NoErr(err)

	_, err = svc.SignUp(ctx, "ana@example.com", "123456")
	is.True(errors.Is(err, ErrEmailInUse))
}

func TestSignOutRevokesSessionAndNotifies(t *testing.T) {
	is, ctx, svc := testSetup(t, Config{})

	events := []string{}
	unsubscribe := svc.OnAuthStateChanged(func(email string, session *types.Session) {
		if session == nil {
			events = append(events, "out:"+email)
		} else {
			events = append(events, "in:"+email)
		}
	})

	s, err := svc.SignUp(ctx, "ana@example.com", "123456")
	is.NoErr(err)

	token, err := svc.TokenAuth().Decode(s.Token)
	is.NoErr(err)

	is.NoErr(svc.SignOut(ctx, token.JwtID()))

	_, err = svc.Authenticate(ctx, token.JwtID())
	is.True(errors.Is(err, ErrSessionNotFound))

	unsubscribe()
	_, err = svc.SignIn(ctx, "ana@example.com", "123456")
	is.NoErr(err)

	is.Equal(events, []string{"in:ana@example.com", "out:ana@example.com"})
}

func TestAuthenticateRejectsExpiredSession(t *testing.T) {
	is, ctx, svc := testSetup(t, Config{})

	users := svc.(*service).users
	err := users.CreateSession(ctx, db.Session{
		ID:        "expired",
		UserID:    "u1",
		Email:     "ana@example.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	is.NoErr(err)

	_, err = svc.Authenticate(ctx, "expired")
	is.True(errors.Is(err, ErrSessionNotFound))
}

func testSetup(t *testing.T, cfg Config) (*is.I, context.Context, IdentityService) {
	is := is.New(t)

	users, err := db.NewUserRepository(db.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	svc := New(users, []byte("test-secret"), cfg)
	svc.(*service).hashCost = bcrypt.MinCost

	return is, context.Background(), svc
}
