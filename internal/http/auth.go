package http

import (
	"context"
	"net/http"
	"strings"

	"crowdfund-service/internal/auth"
	"crowdfund-service/internal/service"
)

type principalKey struct{}

// authenticate требует валидный Bearer-токен и кладёт Principal в контекст.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			h.writeError(w, "authenticate", service.ErrUnauthorized("authentication credentials were not provided"))
			return
		}
		p, err := auth.Parse(token, h.opts.JWTSecret)
		if err != nil {
			appErr := service.ErrUnauthorized("invalid or expired token")
			appErr.Err = err
			h.writeError(w, "authenticate", appErr)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey{}, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOrReadOnly пропускает безопасные методы любому аутентифицированному пользователю,
// а изменяющие только администраторам.
func (h *Handler) adminOrReadOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}
		p, ok := principalFromContext(r.Context())
		if !ok || !p.IsAdmin {
			h.writeError(w, "permission", service.ErrForbidden("you do not have permission to perform this action"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func principalFromContext(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(auth.Principal)
	return p, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
