package middleware

import (
	"net/http"

	"github.com/wolfman30/smilebright-dental/internal/visitor"
	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

// VisitorCookie is the signed visitor id cookie name.
const VisitorCookie = "sb_visitor"

// Visitor attaches a visitor id to every request, minting and signing a new
// one when the cookie is missing or fails verification.
func Visitor(signer *visitor.Signer, secure bool, logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(VisitorCookie); err == nil {
				if id, err := signer.Verify(c.Value); err == nil {
					setLogVisitor(r.Context(), id)
					next.ServeHTTP(w, r.WithContext(visitor.WithID(r.Context(), id)))
					return
				}
			}

			id := visitor.NewID()
			token, err := signer.Sign(id)
			if err != nil {
				logger.Error("failed to sign visitor token", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookie,
				Value:    token,
				Path:     "/",
				MaxAge:   int(signer.TTL().Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			setLogVisitor(r.Context(), id)
			logger.Debug("visitor minted", "visitor_id", id)
			next.ServeHTTP(w, r.WithContext(visitor.WithID(r.Context(), id)))
		})
	}
}
