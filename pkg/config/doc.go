// Package config loads typed configuration structs from environment
// variables, combining github.com/joho/godotenv for optional .env files
// with github.com/caarlos0/env for struct-tag parsing.
//
// Each configuration type is parsed once per process and cached, so
// packages can call Load on their own config structs independently
// without re-reading the environment.
//
// # Usage
//
//	type Config struct {
//	    AdminPass string `env:"ADMIN_PASS"`
//	    Issuer    string `env:"MFA_ISSUER" envDefault:"MineMind Forge"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil { ... }
package config
