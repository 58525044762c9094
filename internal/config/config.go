package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Server Server `yaml:"server"`
	Pg     Pg     `yaml:"pg"`
	S3     S3     `yaml:"s3"`
	Upload Upload `yaml:"upload"`
	Log    Log    `yaml:"log"`
}

type Server struct {
	Port            int           `yaml:"port"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // seconds
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type S3 struct {
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type Upload struct {
	MaxFileSizeBytes int64    `yaml:"max_file_size_bytes"`
	AllowedMimeTypes []string `yaml:"allowed_mime_types"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Private struct {
	PgPassword  string `yaml:"pg_password"`
	S3SecretKey string `yaml:"s3_secret_key"`
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyEnvOverrides()
	return cfg
}

// applyEnvOverrides lets deployment environments supply secrets without
// touching private.yaml.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PG_PASSWORD"); v != "" {
		c.Private.PgPassword = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		c.Private.S3SecretKey = v
	}
}
