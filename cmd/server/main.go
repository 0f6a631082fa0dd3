package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JaimeStill/superbowl/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("env file ignored:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Println("config load failed:", err)
		os.Exit(1)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		log.Println("server init failed:", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		log.Println("server start failed:", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		log.Println("shutdown failed:", err)
		os.Exit(1)
	}

	log.Println("server stopped gracefully")
}
