// File path: cmd/bluslide/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/bluslide/namegallery/internal/api"
	"github.com/bluslide/namegallery/internal/common"
	"github.com/bluslide/namegallery/internal/llm"
	"github.com/bluslide/namegallery/internal/session"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("bluslide: .env file not loaded", "error", err)
	} else {
		logger.Info("bluslide: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	sessionTTL := flag.Duration("session-ttl", 2*time.Hour, "how long generated sessions stay resident")
	local := flag.Bool("local", false, "use the canned local provider instead of a real backend")
	flag.Parse()

	cfg := llm.LoadConfig()
	if *local {
		cfg.Provider = llm.KindLocal
	}
	provider, err := llm.NewProvider(cfg)
	if err != nil {
		if errors.Is(err, llm.ErrNoCredential) {
			// Generation endpoints will answer 503 until a key is set;
			// insights and session reads still work.
			logger.Warn("bluslide: starting without a generation provider", "error", err)
		} else {
			logger.Error("bluslide: provider construction failed", "error", err)
			fmt.Println("provider error:", err)
			os.Exit(1)
		}
	} else {
		logger.Info("bluslide: llm provider ready", "provider", provider.Name())
	}

	sessions := session.NewStore(*sessionTTL)
	server := api.NewServer(provider, sessions)

	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("bluslide: server listening", "addr", *addr, "health", fmt.Sprintf("http://%s/healthz", reachable))
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("bluslide: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}
