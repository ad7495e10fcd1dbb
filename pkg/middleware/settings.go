package middleware

import (
	"log"

	coreDomain "electroworld/internal/core"

	"github.com/pocketbase/pocketbase/core"
)

// SettingsMiddleware loads the shop settings into the request context so
// page rendering and handlers share one lookup per request.
func SettingsMiddleware(settingsRepo coreDomain.SettingsRepository) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		settings, err := settingsRepo.GetSettings()
		if err != nil {
			// Repo falls back to defaults, so just note it and move on.
			log.Printf("⚠️ [SETTINGS] load failed, using defaults: %v", err)
		}
		e.Set("Settings", settings)
		return e.Next()
	}
}
