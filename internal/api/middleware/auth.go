package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
)

type ctxKey string

// staffIDKey ключ контекста с ID сотрудника из заголовка
const staffIDKey ctxKey = "staffID"

// HeaderStaffID заголовок аутентификации сотрудника
const HeaderStaffID = "X-Staff-ID"

// Auth проверяет наличие корректного заголовка X-Staff-ID и кладёт
// ID сотрудника в контекст запроса. Защищённые маршруты доступны
// только персоналу
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderStaffID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing "+HeaderStaffID+" header")
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid "+HeaderStaffID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext возвращает ID сотрудника, положенный Auth middleware
func StaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey).(int64)
	return id, ok
}
