// config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Database      DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Auth          AuthConfiguration
	Permission    PermissionConfiguration
	Seed          SeedConfiguration
	RateLimit     RateLimitConfiguration
	Log           LogConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for the Postgres connection. When disabled the
// service runs on the in-memory store.
type DatabaseConfiguration struct {
	Enabled         bool
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Enabled         bool
	Addr            string
	Password        string
	DB              int
	DefaultCacheTTL time.Duration
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	Enabled bool
	URL     string
	Index   string
}

// AuthConfiguration holds the HMAC secret used to verify bearer tokens
type AuthConfiguration struct {
	JWTSecret string
}

// PermissionConfiguration controls menu permission resolution
type PermissionConfiguration struct {
	BypassRoles          []string
	OrgAdminRole         string
	AutoIncludeAncestors bool
}

// SeedConfiguration controls the menu seed synchronizer at bootstrap
type SeedConfiguration struct {
	File          string
	SyncOnStart   bool
	RemoveOrphans bool
}

type RateLimitConfiguration struct {
	Requests int
	Window   time.Duration
}

type LogConfiguration struct {
	Dir string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.enabled", true)
	viper.SetDefault("database.dsn", "host=localhost user=postgres password=postgres dbname=navguard port=5432 sslmode=disable")
	viper.SetDefault("database.maxOpenConns", 20)
	viper.SetDefault("database.maxIdleConns", 5)
	viper.SetDefault("database.connMaxLifetime", "30m")
	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("redis.dialTimeout", "5s")
	viper.SetDefault("redis.readTimeout", "3s")
	viper.SetDefault("redis.writeTimeout", "3s")
	viper.SetDefault("redis.poolSize", 10)
	viper.SetDefault("elasticsearch.enabled", false)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "navguard-audit")
	viper.SetDefault("permission.bypassRoles", []string{"super_admin", "admin"})
	viper.SetDefault("permission.orgAdminRole", "admin")
	viper.SetDefault("permission.autoIncludeAncestors", false)
	viper.SetDefault("seed.syncOnStart", true)
	viper.SetDefault("seed.removeOrphans", false)
	viper.SetDefault("rateLimit.requests", 100)
	viper.SetDefault("rateLimit.window", "1m")
	viper.SetDefault("log.dir", "")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
