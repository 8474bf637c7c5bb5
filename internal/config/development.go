package config

import "os"

// Development reports whether the DEVELOPMENT env variable asks for debug
// behaviour. Any value but "0" counts.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
