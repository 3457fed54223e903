package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подтягивает переменные из .env и применяет флаг -port
// поверх окружения. Флаг удобен для локального запуска двух
// экземпляров сервиса рядом.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var portOverride string
	flag.StringVar(&portOverride, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portOverride == "" {
		return nil
	}
	if err := os.Setenv("PORT", portOverride); err != nil {
		return fmt.Errorf("failed to set PORT environment variable: %w", err)
	}
	return nil
}
