package handlers

import (
	"context"
	"net/http"
	"strings"

	"luxemart/internal/utility"
)

type contextKey string

const (
	// ContextUID carries the caller's user id once a token has been accepted.
	ContextUID   contextKey = "uid"
	ContextEmail contextKey = "email"
)

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return header
}

// Authentication admits any caller presenting a valid user or admin token and
// stores the caller identity on the request context.
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if claims, errMsg := utility.ValidateToken(tokenString); errMsg == "" {
			ctx := context.WithValue(r.Context(), ContextUID, claims.Uid)
			ctx = context.WithValue(ctx, ContextEmail, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		claims, errMsg := utility.ValidateAdminToken(tokenString)
		if errMsg != "" {
			http.Error(w, errMsg, http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), ContextUID, claims.Uid)
		ctx = context.WithValue(ctx, ContextEmail, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly admits only callers presenting a valid admin token.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, errMsg := utility.ValidateAdminToken(tokenString)
		if errMsg != "" {
			http.Error(w, errMsg, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextUID, claims.Uid)
		ctx = context.WithValue(ctx, ContextEmail, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerUID(r *http.Request) string {
	uid, _ := r.Context().Value(ContextUID).(string)
	return uid
}
