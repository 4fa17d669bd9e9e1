package testutil

import (
	"todo-app/config"
)

// ReadConfig reads config file for test.
func ReadConfig() {
	config.ReadConfig(config.ReadConfigOption{
		AppEnv: config.Test,
	})
}

func ReadConfigE2E() {
	config.ReadConfig(config.ReadConfigOption{
		AppEnv: config.E2E,
	})
}
