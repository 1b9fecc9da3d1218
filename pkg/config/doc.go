// Package config loads service configuration from environment variables.
//
// Configuration is entirely environment-driven so the same binary runs
// unchanged across development, staging and production. Each concern defines
// its own struct with `env` tags and loads it once at startup:
//
//	var mongoCfg mongo.Config
//	config.MustLoad(&mongoCfg)
//
// A local .env file is picked up automatically in development.
package config
