package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"eventplanner/internal/ports/input"
	"eventplanner/internal/ports/output"
)

// Server holds the use cases behind the JSON API.
type Server struct {
	events input.EventUseCase
	users  input.UserUseCase
	errs   errorWriter
	logger *slog.Logger
}

func NewServer(events input.EventUseCase, users input.UserUseCase, translator output.T, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		events: events,
		users:  users,
		errs:   errorWriter{translator: translator, logger: logger},
		logger: logger,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.logger))
	r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, codeNotFound, "not found")
	})

	auth := requireAuth(s.users, s.errs)

	r.GET("/health", handleHealth)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.register)
	authGroup.POST("/login", s.login)
	authGroup.POST("/logout", auth, s.logout)
	authGroup.GET("/me", auth, s.me)

	api.GET("/users/count", s.countUsers)

	events := api.Group("/events")
	events.GET("", s.listEvents)
	events.POST("", auth, s.createEvent)
	events.POST("/conflicts", auth, s.checkConflict)
	events.GET("/by-day", s.eventsByDay)
	events.GET("/:id", s.getEvent)
	events.PUT("/:id", auth, s.updateEvent)
	events.DELETE("/:id", auth, s.deleteEvent)

	admin := api.Group("/admin", auth)
	admin.GET("/events", s.adminListEvents)
	admin.GET("/users", s.adminListUsers)
	admin.PUT("/users/:id", s.adminUpdateUser)
	admin.DELETE("/users/:id", s.adminDeleteUser)

	return r
}

// Handler wraps the router with CORS for the given origins.
func (s *Server) Handler(origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
	})
	return c.Handler(s.Router())
}

func handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
