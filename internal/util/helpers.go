package util

import (
	"log"
	"os"
	"strings"
)

func Env(envName, defaultValue string) string {
	var val, exists = os.LookupEnv(envName)

	if !exists {
		log.Printf("WARNING: '%s' is not set. Using default value ('%s').", envName, defaultValue)
		return defaultValue
	}

	return strings.TrimSpace(val)
}
