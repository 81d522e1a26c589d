package main

import (
    "github.com/anilkaliya/LifeOs/config"
    "github.com/anilkaliya/LifeOs/logger"
    "github.com/anilkaliya/LifeOs/routes"
    "github.com/anilkaliya/LifeOs/services"

    "github.com/rs/zerolog/log"
)

func main() {
    logger.Initialize()
    config.Load()
    config.InitDB()
    services.InitOAuthProviders()

    r := routes.SetupRouter()
    log.Info().Str("port", config.App.Port).Msg("lifeos api listening")
    if err := r.Run(":" + config.App.Port); err != nil {
        log.Fatal().Err(err).Msg("server exited")
    }
}
