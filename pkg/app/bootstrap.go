package app

import (
	"log"

	"github.com/venkatesh141/Ecom/config"
	"github.com/venkatesh141/Ecom/pkg/logger"
)

// BootstrapApp loads configuration and initializes the global logger.
func BootstrapApp() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		log.Fatalf("init logger: %v", err)
	}

	logger.Info("Application bootstrapped successfully")

	return cfg
}
