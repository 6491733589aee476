package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Configuration struct {
	ApiPort   string `json:"api_port"`
	ApiPrefix string `json:"api_prefix"`
	LogDir    string `json:"log_dir"`

	Database    string `json:"database"` // "sqlite3", "memory" ou "postgres"
	DbHost      string `json:"db_host"`
	DbPort      string `json:"db_port"`
	DbUser      string `json:"db_user"`
	DbName      string `json:"db_name"`
	DbPass      string `json:"db_pass"`
	DbPath      string `json:"db_path"`
	DbLogMode   bool   `json:"db_log_mode"`
	AutoMigrate *bool  `json:"auto_migrate"`

	Auth struct {
		Username string `json:"username"`
		Password string `json:"password"`
	} `json:"auth"`
}

// Migrate reports whether the schema should be created at startup.
func (c Configuration) Migrate() bool {
	return c.AutoMigrate == nil || *c.AutoMigrate
}

// Get loads the configuration or exits the process.
func Get(path string) Configuration {
	c, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return c
}

// Load reads path (if present), applies .env and environment overrides and
// fills defaults. A missing file is not an error.
func Load(path string) (Configuration, error) {
	_ = godotenv.Load()

	var c Configuration
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		log.Warnf("config %s not found, using defaults", path)
	default:
		return c, fmt.Errorf("config %s: %w", path, err)
	}

	applyEnv(&c)

	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogDir == "" {
		c.LogDir = "logs"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "db/database.db"
	}
	if c.DbPort == "" {
		c.DbPort = "5432"
	}
	if c.Auth.Username == "" {
		c.Auth.Username = "admin"
	}
	if c.Auth.Password == "" {
		c.Auth.Password = "123"
	}
	c.ApiPrefix = strings.TrimRight(c.ApiPrefix, "/")

	return c, nil
}

func applyEnv(c *Configuration) {
	setString(&c.ApiPort, "PORT")
	setString(&c.ApiPrefix, "API_PREFIX")
	setString(&c.LogDir, "LOG_DIR")
	setString(&c.Database, "DATABASE")
	setString(&c.DbHost, "DB_HOST")
	setString(&c.DbPort, "DB_PORT")
	setString(&c.DbUser, "DB_USER")
	setString(&c.DbName, "DB_NAME")
	setString(&c.DbPass, "DB_PASS")
	setString(&c.DbPath, "DB_PATH")
	setString(&c.Auth.Username, "AUTH_USERNAME")
	setString(&c.Auth.Password, "AUTH_PASSWORD")

	if v, ok := lookupBool("DB_LOG_MODE"); ok {
		c.DbLogMode = v
	}
	if v, ok := lookupBool("AUTO_MIGRATE"); ok {
		c.AutoMigrate = &v
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func lookupBool(key string) (bool, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("ignoring %s=%q: %v", key, v, err)
		return false, false
	}
	return b, true
}
