package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/tracing"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
)

type sessionContextKey struct{ name string }

var sessionCtxKey = &sessionContextKey{"session"}

var tracer = otel.Tracer("asset-inventory/authz")

type Scope string

const (
	ScopeInventoryRead  Scope = "inventory.read"
	ScopeInventoryWrite Scope = "inventory.write"
	ScopeActivityClear  Scope = "activity.clear"
)

// SessionValidator confirms that the session a token was issued for is still valid.
type SessionValidator interface {
	Authenticate(ctx context.Context, sessionID string) (types.Session, error)
}

type Enticator interface {
	RequireAccess(scopes ...Scope) func(http.Handler) http.Handler
}

type impl struct {
	query    rego.PreparedEvalQuery
	sessions SessionValidator
}

// RequireAccess only lets requests through whose verified token belongs to a
// live session and whose role is granted all of the given scopes by the policy.
// It expects jwtauth.Verifier to have run before it.
func (a *impl) RequireAccess(scopes ...Scope) func(http.Handler) http.Handler {

	requiredScopes := make([]string, 0, len(scopes))
	for _, s := range scopes {
		requiredScopes = append(requiredScopes, string(s))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error

			logger := logging.GetLoggerFromContext(r.Context())

			ctx, span := tracer.Start(r.Context(), "check-auth")
			defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

			token, claims, err := jwtauth.FromContext(ctx)
			if err != nil || token == nil {
				if err == nil {
					err = errors.New("no token found")
				}
				logger.Info().Err(err).Msg("request not authenticated")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			session, err := a.sessions.Authenticate(ctx, token.JwtID())
			if err != nil {
				logger.Info().Err(err).Msg("session is no longer valid")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			role, _ := claims["role"].(string)
			session.Role = role

			input := map[string]any{
				"role":   role,
				"scopes": requiredScopes,
			}

			results, err := a.query.Eval(ctx, rego.EvalInput(input))
			if err != nil {
				logger.Error().Err(err).Msg("opa eval failed")
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if len(results) == 0 {
				err = errors.New("opa query could not be satisfied")
				logger.Error().Err(err).Msg("auth failed")
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			allowed, ok := results[0].Bindings["x"].(bool)
			if !ok {
				err = errors.New("unexpected result type")
				logger.Error().Err(err).Msg("opa error")
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			if !allowed {
				err = errors.New("authorization failed")
				logger.Warn().Str("role", role).Strs("scopes", requiredScopes).Msg(err.Error())
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			r = r.WithContext(WithSession(r.Context(), session))

			next.ServeHTTP(w, r)
		})
	}
}

func NewAuthenticator(ctx context.Context, policies io.Reader, sessions SessionValidator) (Enticator, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	query, err := rego.New(
		rego.Query("x = data.keepinventory.authz.allow"),
		rego.Module("keepinventory.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	return &impl{query: query, sessions: sessions}, nil
}

// GetSessionFromContext returns the session of the authenticated caller, if any.
func GetSessionFromContext(ctx context.Context) (types.Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(types.Session)
	return s, ok
}

func WithSession(ctx context.Context, session types.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}
