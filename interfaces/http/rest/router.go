package rest

import (
	"net/http"

	"github.com/JuanSebastianGarcia23/calzado/interfaces/http/rest/handlers"
	"github.com/JuanSebastianGarcia23/calzado/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router for the local server
type Router struct {
	invoker        handlers.Invoker
	allowedOrigins []string
	logger         *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(invoker handlers.Invoker, allowedOrigins []string, logger *zap.Logger) *Router {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	return &Router{
		invoker:        invoker,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", rt.healthCheck)

	invocationHandler := handlers.NewInvocationHandler(rt.invoker, rt.logger)

	router.Route("/calzado", func(r chi.Router) {
		r.Post("/", invocationHandler.Calzado)
		r.Get("/", invocationHandler.Calzado)
		r.Get("/{id}", invocationHandler.Calzado)
		r.Put("/{id}", invocationHandler.Calzado)
		r.Patch("/{id}", invocationHandler.Calzado)
		r.Delete("/{id}", invocationHandler.Calzado)
	})

	router.Post("/invoke", invocationHandler.Invoke)

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
