//go:build headless

package gui

import (
	"context"

	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/profile"
)

func Available() bool {
	return false
}

func Run(_ context.Context, _ string, _ config.Options, _ profile.Profile, logger *logging.Logger) {
	logger.Error("desktop window is not available in headless builds")
}
