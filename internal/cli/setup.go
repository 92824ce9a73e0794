package cli

import (
	"fmt"

	"github.com/TudorHulban/slotledger/internal/config"
	"github.com/TudorHulban/slotledger/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	configPath, errFlag := cmd.Flags().GetString("config")
	if errFlag != nil {
		return nil, nil, errFlag
	}

	cfg, errConfig := config.Load(configPath)
	if errConfig != nil {
		return nil, nil, errConfig
	}

	l, errLogger := logger.New(cfg)
	if errLogger != nil {
		return nil, nil,
			fmt.Errorf("build logger: %w", errLogger)
	}

	return cfg, l, nil
}
