// Package config provides server configuration for the river crossing game.
//
// Settings come from environment variables, with defaults baked into the
// struct tags. main loads a .env file before calling Load so development
// overrides live next to the binary instead of in shell exports.
//
// Supported variables:
//   - HOST, PORT: HTTP bind address (default localhost:8080)
//   - LOG_LEVEL: zerolog level name (default info)
//   - SESSION_TTL: idle time before a session is cleaned up (default 24h)
//   - CLEANUP_INTERVAL: how often the cleanup pass runs (default 1h)
//   - SHUTDOWN_TIMEOUT: graceful shutdown window (default 10s)
//   - NGROK_ENABLED, NGROK_AUTHTOKEN, NGROK_DOMAIN: optional public tunnel
//
// The puzzle itself is not configurable. There is exactly one river, one
// ferry and three passengers, so nothing here touches game rules.
//
// Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal().Err(err).Msg("load config")
//	}
//	srv.ListenAndServe(cfg.Addr())
package config
