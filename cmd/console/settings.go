package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// loadSettings reads CONSOLE_* variables, optionally from a .env file, on
// top of the defaults below.
func loadSettings() *viper.Viper {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("api_url", "http://localhost:8080/api/v1")
	conf.SetDefault("username", "")
	conf.SetDefault("password", "")
	conf.SetDefault("limit", 5)
	conf.SetDefault("timeout", 15*time.Second)

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}
	conf.SetEnvPrefix("CONSOLE")
	conf.AutomaticEnv()
	return conf
}
