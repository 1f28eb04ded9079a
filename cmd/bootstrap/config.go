package bootstrap

import (
	"errors"
	"io/fs"
	"log/slog"

	"talentbridge/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads .env when present; real environment variables take precedence.
func LoadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err.Error())
	}
	return config.LoadConfig()
}
