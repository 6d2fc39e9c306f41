package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "Portal")
	Conf.SetDefault("secretKey", "v8#ym)a3&1z_1k5^ie!o+bc0d9t(qwm%x$e2u7r4s6p8n0j5g3")
	Conf.SetDefault("sessionCookie", "portal_session")
	Conf.SetDefault("jwtExpirationDelta", 12*time.Hour)

	// admin credential pair; override in config/.env.* or the environment
	Conf.SetDefault("adminUsername", "admin")
	Conf.SetDefault("adminPassword", "admin")

	// student roll -> password map; override via config file for rotation
	Conf.SetDefault("studentCredentials", map[string]string{
		"2511039": "18122002",
		"2510361": "27102003",
		"2510701": "07111992",
		"2512322": "16052004",
		"2511040": "19052004",
	})

	// database
	Conf.SetDefault("dbEngine", "postgres")
	Conf.SetDefault("dbHost", "localhost")
	Conf.SetDefault("dbPort", "5432")
	Conf.SetDefault("dbName", "portal")
	Conf.SetDefault("dbUser", "")
	Conf.SetDefault("dbPassword", "")
	Conf.SetDefault("dbDisableTLS", true)

	Conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case strings.ToUpper("TEST"):
		Conf.SetDefault("testMode", true)
	}
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}
