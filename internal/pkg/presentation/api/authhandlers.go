package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/identity"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/tracing"
	"github.com/keepinventory/asset-inventory/internal/pkg/presentation/api/auth"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/rs/zerolog"
)

const loginErrorTitle string = "Erro de Login"

func signInHandler(log zerolog.Logger, svc identity.IdentityService) http.HandlerFunc {
	return credentialsHandler(log, "sign-in", func(r *http.Request, c types.Credentials) (types.Session, error) {
		return svc.SignIn(r.Context(), c.Email, c.Password)
	})
}

func signUpHandler(log zerolog.Logger, svc identity.IdentityService) http.HandlerFunc {
	return credentialsHandler(log, "sign-up", func(r *http.Request, c types.Credentials) (types.Session, error) {
		return svc.SignUp(r.Context(), c.Email, c.Password)
	})
}

func credentialsHandler(log zerolog.Logger, operation string, sign func(*http.Request, types.Credentials) (types.Session, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), operation)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		credentials := types.Credentials{}
		err = decodeBody(r, &credentials)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read credentials")
			writeNotice(w, requestLogger, http.StatusBadRequest, loginErrorTitle, "Requisição inválida.", nil)
			return
		}

		if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
			err = errors.New("missing email or password")
			writeNotice(w, requestLogger, http.StatusBadRequest, loginErrorTitle, "Por favor, preencha o e-mail e a senha corretamente.", nil)
			return
		}

		session, err := sign(r.WithContext(ctx), credentials)
		if err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, identity.ErrInvalidEmail), errors.Is(err, identity.ErrWeakPassword):
				status = http.StatusBadRequest
			case errors.Is(err, identity.ErrInvalidCredentials), errors.Is(err, identity.ErrAccountNotFound):
				status = http.StatusUnauthorized
			case errors.Is(err, identity.ErrEmailInUse):
				status = http.StatusConflict
			}

			if status == http.StatusInternalServerError {
				requestLogger.Error().Err(err).Msgf("%s failed", operation)
			} else {
				requestLogger.Info().Err(err).Msgf("%s rejected", operation)
			}

			writeNotice(w, requestLogger, status, loginErrorTitle, err.Error(), nil)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    session.Token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, requestLogger, http.StatusOK, session)
	}
}

func signOutHandler(log zerolog.Logger, svc identity.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "sign-out")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		token, _, err := jwtauth.FromContext(ctx)
		if err != nil || token == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		err = svc.SignOut(ctx, token.JwtID())
		if err != nil && !errors.Is(err, identity.ErrSessionNotFound) {
			requestLogger.Error().Err(err).Msg("unable to sign out")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}

func meHandler(log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := auth.GetSessionFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		writeJSON(w, log, http.StatusOK, session)
	}
}
