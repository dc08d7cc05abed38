package database

import "kampala_finance_backend/internal/config"

func configFor(driver string) config.StorageConfig {
	return config.StorageConfig{Driver: driver, Key: "test_key", Path: "unused"}
}
