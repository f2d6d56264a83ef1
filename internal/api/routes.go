package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"timekit/internal/stopwatch"
)

// uptimeLabel is the timer started at construction and peeked by the health
// endpoint for the service's lifetime.
const uptimeLabel = "uptime"

// Config defines server dependencies.
type Config struct {
	ServiceName    string
	AllowedOrigins []string
	Logger         *logrus.Logger
	Watch          *stopwatch.Shared
}

// Server wires HTTP handlers with the shared stopwatch that times them.
type Server struct {
	name           string
	allowedOrigins []string
	log            *logrus.Logger
	watch          *stopwatch.Shared
}

// NewServer constructs the API server. A nil stopwatch falls back to the
// process-wide instance; a nil logger falls back to the logrus default.
func NewServer(cfg Config) *Server {
	watch := cfg.Watch
	if watch == nil {
		watch = stopwatch.Default()
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	name := cfg.ServiceName
	if name == "" {
		name = "timekit"
	}

	watch.Start(uptimeLabel)

	return &Server{
		name:           name,
		allowedOrigins: cfg.AllowedOrigins,
		log:            log,
		watch:          watch,
	}
}

// Router configures gin routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.Use(RequestTimer(s.watch, s.log))

	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"uptime_ms": s.watch.Peek(uptimeLabel, stopwatch.Silent()),
	})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":         s.name,
		"allowed_origins": s.allowedOrigins,
		"active_timers":   len(s.watch.Active()),
	})
}
