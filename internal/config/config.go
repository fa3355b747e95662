package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	Version    string `yaml:"version" env-default:"2.0.0"`
	HTTPServer `yaml:"http_server"`

	TemplatePath string `yaml:"template_path" env:"TEMPLATE_PATH" env-default:"trade_library/multi_trade/kitchen_renovation_complete.json"`

	// ApplyComplexityToMaterials extends the size x scope multiplier to
	// material costs in addition to labor hours.
	ApplyComplexityToMaterials bool `yaml:"apply_complexity_to_materials" env:"APPLY_COMPLEXITY_TO_MATERIALS" env-default:"false"`

	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"ADDRESS" env-default:"localhost:8000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustConfig() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/local.yaml"
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		log.Fatalf("cannot read config %s: %s", path, err)
	}

	return &cfg
}
