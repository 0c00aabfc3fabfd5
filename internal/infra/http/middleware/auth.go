package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// RequireAccount extrai a identidade da conta do header que o gateway de
// autenticação upstream injeta depois de validar a sessão. A emissão de
// sessão em si não mora neste serviço.
func RequireAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := r.Header.Get("X-Account-ID")
		if accountID == "" {
			http.Error(w, "missing account identity", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccountID lê a conta do contexto. Vazio só acontece em rota sem o
// middleware: bug de roteamento, não de request.
func AccountID(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey).(string)
	return id
}
