package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Redis      Redis
	Prometheus Prometheus
	Session    Session
}

type HTTPServer struct {
	Address      string
	Port         int
	TemplatesDir string
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Redis struct {
	Address  string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type Prometheus struct {
	Address string
	Port    int
}

type Session struct {
	CookieName string
	TTL        time.Duration
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.templates_dir", "web/templates")

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "blog-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "blogservice")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("redis.address", "redis")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("prometheus.address", "0.0.0.0")
	viper.SetDefault("prometheus.port", 9104)

	viper.SetDefault("session.cookie_name", "blog_session")
	viper.SetDefault("session.ttl", "720h")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address:      viper.GetString("http_server.address"),
			Port:         viper.GetInt("http_server.port"),
			TemplatesDir: viper.GetString("http_server.templates_dir"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Redis: Redis{
			Address:  viper.GetString("redis.address"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			PoolSize: viper.GetInt("redis.pool_size"),
		},
		Prometheus: Prometheus{
			Address: viper.GetString("prometheus.address"),
			Port:    viper.GetInt("prometheus.port"),
		},
		Session: Session{
			CookieName: viper.GetString("session.cookie_name"),
			TTL:        viper.GetDuration("session.ttl"),
		},
	}

	return config
}
