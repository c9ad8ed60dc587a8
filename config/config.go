package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ItemsPerPage is the fixed page size for the bookings table.
const ItemsPerPage = 5

type Config struct {
	// Backend
	APIBaseURL string `envconfig:"API_BASE_URL" default:"https://giraffespacev2.onrender.com/api/v1"`
	APITimeout int    `envconfig:"API_TIMEOUT_SEC" default:"30"`
	// Network
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":80"`
	MetricsAddr string `envconfig:"METRICS_ADDR" default:":9091"`
	// Session
	SignSecret    string `envconfig:"SIGN" required:"true"`
	SessionExpiry int    `envconfig:"SESSION_EXPIRY_HOURS" default:"8"`
}

// Load reads .env when present, then fills the config from the environment.
func Load() (Config, error) {
	godotenv.Load()

	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}
