package usecase

import (
	"context"
	"fmt"

	"github.com/codinganovel/texty/internal/domain"
)

// ShowConfigOutput contains the effective configuration.
type ShowConfigOutput struct {
	Config    *domain.Config
	GlobalDir string // Where the global config lives
}

// ShowConfig is the use case for displaying the merged configuration.
type ShowConfig struct {
	config  domain.ConfigLoader
	manager domain.ConfigManager
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(config domain.ConfigLoader, manager domain.ConfigManager) *ShowConfig {
	return &ShowConfig{config: config, manager: manager}
}

// Execute loads and returns the merged configuration.
func (uc *ShowConfig) Execute(_ context.Context) (*ShowConfigOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &ShowConfigOutput{Config: cfg, GlobalDir: uc.manager.GlobalDir()}, nil
}

// InitConfigOutput contains the result of initializing the config.
type InitConfigOutput struct {
	Path string // Path of the written starter file
}

// InitConfig is the use case for writing the starter config file.
type InitConfig struct {
	manager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(manager domain.ConfigManager) *InitConfig {
	return &InitConfig{manager: manager}
}

// Execute writes the starter config file.
func (uc *InitConfig) Execute(_ context.Context) (*InitConfigOutput, error) {
	path, err := uc.manager.WriteStarter()
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
