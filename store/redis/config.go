package redis

import (
	"os"
	"strconv"
)

// FromEnv reads store configuration from the environment. All variables are
// optional:
//
//	REDIS_HOST      default "localhost"
//	REDIS_PORT      default 6379
//	REDIS_PASSWORD  default unset
//	REDIS_DB        default 0
func FromEnv() Config {
	return Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     envInt("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       envInt("REDIS_DB"),
	}
}

func envInt(name string) int {
	v, _ := strconv.Atoi(os.Getenv(name))
	return v
}
