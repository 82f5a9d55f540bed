package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"badgeofshame/internal"
	"badgeofshame/internal/db"
	"badgeofshame/internal/env"
	"badgeofshame/internal/events"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	deployment := flag.String("deployment", "", "deployment profile (dev|test|prod)")
	portFlag := flag.String("port", "", "port to listen on")
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	if deploy := strings.TrimSpace(*deployment); deploy != "" {
		_ = os.Setenv("DEPLOYMENT", deploy)
	}

	port := strings.TrimSpace(*portFlag)
	if port == "" {
		port = strings.TrimSpace(os.Getenv("PORT"))
	}
	if port == "" {
		fmt.Println("Usage: server --port <port> [--deployment <type>] [--env-root <dir>] [--app-version <version>]")
		os.Exit(1)
	}

	cfg, err := env.Init(*envRoot, *appVersion)
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	app := internal.SetupApp(cfg)
	logrus.Tracef("configuration:\n%s", cfg.String())

	logrus.WithFields(logrus.Fields{
		"version":    cfg.Version,
		"deployment": cfg.Deployment,
		"cache":      cfg.Cache.Driver,
	}).Info("starting badge server")

	err = app.Listen(fmt.Sprintf(":%s", port), fiber.ListenConfig{
		EnablePrefork: cfg.Prefork,
	})

	if events.Em != nil {
		events.Em.Close()
	}
	db.Close()

	if err != nil {
		logrus.Fatalf("Error listening on port %s: %v", port, err)
	}
}
