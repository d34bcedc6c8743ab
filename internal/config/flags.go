package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-log-level minimum log level (debug, info, warn, error)
//	-demo-seed seed a demo user with photos at startup
//	-app-version application version string
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string
	var demoSeed bool
	var appVersion string

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	flag.BoolVar(&demoSeed, "demo-seed", false, "Seed a demo user with photos at startup")
	flag.StringVar(&appVersion, "app-version", "", "Application version string")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version:  appVersion,
			LogLevel: logLevel,
			DemoSeed: demoSeed,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
