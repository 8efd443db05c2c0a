package env

import (
	"os"

	"github.com/rs/zerolog"
)

// GetVariableOrDefault returns the value of the named environment variable, or the
// provided default value if the variable is unset or empty.
func GetVariableOrDefault(log zerolog.Logger, name, defaultValue string) string {
	value := os.Getenv(name)

	if value == "" {
		log.Debug().Msgf("%s not set, using default value", name)
		return defaultValue
	}

	return value
}

// GetVariableOrDie returns the value of the named environment variable and terminates
// the process if it is missing.
func GetVariableOrDie(log zerolog.Logger, name, description string) string {
	value := os.Getenv(name)

	if value == "" {
		log.Fatal().Msgf("please set %s to a valid %s", name, description)
	}

	return value
}
