package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"timekit/internal/api"
	"timekit/internal/stopwatch"
)

func main() {
	if level := strings.TrimSpace(os.Getenv("TIMEKIT_LOG_LEVEL")); level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			logrus.Fatalf("parse TIMEKIT_LOG_LEVEL: %v", err)
		}
		logrus.SetLevel(parsed)
	}

	var origins []string
	if raw := strings.TrimSpace(os.Getenv("TIMEKIT_ALLOWED_ORIGINS")); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	name := strings.TrimSpace(os.Getenv("TIMEKIT_SERVICE_NAME"))
	if name == "" {
		name = "timekit"
	}

	cfg := api.Config{
		ServiceName:    name,
		AllowedOrigins: origins,
		Logger:         logrus.StandardLogger(),
		Watch:          stopwatch.Default(),
	}

	server := api.NewServer(cfg)
	router := server.Router()

	port := os.Getenv("PORT")
	if port == "" {
		port = "2000"
	}

	logrus.Infof("starting %s on :%s", name, port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
