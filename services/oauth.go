package services

import (
	"net/http"

	"github.com/anilkaliya/LifeOs/config"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	"github.com/rs/zerolog/log"
)

// InitOAuthProviders wires goth's Google provider and gives gothic its own
// cookie store. Gothic's default store has Secure=true, which breaks the
// flow on plain-HTTP localhost.
func InitOAuthProviders() {
	gothStore := sessions.NewCookieStore([]byte(config.App.SessionSecret))
	gothStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   config.App.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}
	gothic.Store = gothStore

	if config.App.GoogleClientID == "" {
		log.Warn().Msg("GOOGLE_CLIENT_ID not set, Google login disabled")
		return
	}

	goth.UseProviders(
		google.New(
			config.App.GoogleClientID,
			config.App.GoogleClientSecret,
			config.App.GoogleCallbackURL,
			"email",
			"profile",
		),
	)

	log.Info().Msg("oauth providers initialized: google")
}
