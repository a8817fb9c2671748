// Package config loads typed configuration structs from environment
// variables.
//
// Each config type is parsed once per process and cached; a .env file, when
// present, is loaded before the first parse. Struct fields declare their
// sources with env tags:
//
//	type ResolverConfig struct {
//		PlatformRoots []string      `env:"PLATFORM_ROOTS,required"`
//		CacheTTL      time.Duration `env:"DOMAIN_CACHE_TTL" envDefault:"5m"`
//	}
//
//	var cfg ResolverConfig
//	if err := config.Load(&cfg); err != nil { ... }
package config
