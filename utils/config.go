package utils

import "rhiclean/config"

// IsProduction reports whether the app is running with ENV=production.
func IsProduction() bool {
	return config.IsProduction()
}
