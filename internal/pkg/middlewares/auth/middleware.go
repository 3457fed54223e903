package auth

import (
	"context"
	"net/http"

	"fulfillment/pkg/logger"
	"github.com/gorilla/mux"
)

// HeaderToken имя заголовка с креденшелом, как его шлют дашборды.
const HeaderToken = "token"

type contextKey struct{}

// RestaurantIDFromContext возвращает ID ресторана, положенный middleware.
func RestaurantIDFromContext(ctx context.Context) (string, bool) {
	restaurantID, ok := ctx.Value(contextKey{}).(string)
	return restaurantID, ok
}

// WithRestaurantID кладет ID ресторана в контекст запроса.
func WithRestaurantID(ctx context.Context, restaurantID string) context.Context {
	return context.WithValue(ctx, contextKey{}, restaurantID)
}

// Middleware разрешает identity ресторана из креденшела ДО бизнес-логики.
// Клиент никогда не передает restaurantId сам - только креденшел;
// неразрешенный креденшел дает 401, не доходя до хендлеров.
func Middleware(log handlerLogger, resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := r.Header.Get(HeaderToken)

			restaurantID, err := resolver.Resolve(r.Context(), credential)
			if err != nil {
				handlerPath := r.URL.Path
				route := mux.CurrentRoute(r)
				if route != nil {
					if template, err := route.GetPathTemplate(); err == nil {
						handlerPath = template
					}
				}

				AuthRejectedTotal.WithLabelValues(r.Method, handlerPath).Inc()

				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("route", handlerPath),
					logger.NewField("error", err),
				).Warn("unauthenticated request")

				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRestaurantID(r.Context(), restaurantID)))
		})
	}
}
