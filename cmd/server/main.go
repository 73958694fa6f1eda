package main

import (
	"flag"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/logger"
	"github.com/CodingWithShahzaib/openai-attorney-chatbot/server"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to TOML config file")
	listenAddr := flag.String("listen", "", "Address to listen on (overrides config)")
	dbPath := flag.String("db", "", "Path to SQLite usage ledger (overrides config, default: in-memory)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// .env is optional; existing environment variables win
	_ = godotenv.Load()

	// Set up logger
	logger := logger.NewLogger(*debug)
	defer logger.Sync()

	config, err := server.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if *listenAddr != "" {
		config.ListenAddr = *listenAddr
	}
	if *dbPath != "" {
		config.DBPath = *dbPath
	}

	logger.Info("attorney chatbot starting",
		zap.String("listen", config.ListenAddr),
		zap.String("model", config.Model),
		zap.Bool("debug", *debug),
	)

	// Create and run the server
	s, err := server.New(config, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}
	defer s.Close()

	if err := s.Run(); err != nil {
		logger.Fatal("chat server failed", zap.Error(err))
	}
}
