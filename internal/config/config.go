package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ListingConfig struct {
	Env         string `yaml:"env"`
	HTTPServer  `yaml:"http_server"`
	ListingDB   `yaml:"listing_db"`
	LogConfig   `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	ChatService  `yaml:"chat-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ListingDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"notification-events"`
}

type ChatService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

func MustLoad() *ListingConfig {

	// Processing env config variable and file
	configPath := os.Getenv("LISTING_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("LISTING_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ListingConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
