package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string   `env:"RUN_ADDRESS"`
	DatabaseDSN   string   `env:"DATABASE_URI"                    validate:"required"`
	MigrationsDir string   `env:"MIGRATIONS_DIR"`
	RedisAddr     string   `env:"REDIS_ADDR"`
	RedisPassword string   `env:"REDIS_PASSWORD"`
	RedisDB       int      `env:"REDIS_DB"                        validate:"min=0"`
	LogFile       string   `env:"LOG_FILE"`
	CORSOrigins   []string `env:"CORS_ORIGINS"    envSeparator:","`

	SignIn    SignInConfig    `envPrefix:"SIGNIN_"`
	Reconcile ReconcileConfig `envPrefix:"RECONCILE_"`
	WxPay     WxPayConfig     `envPrefix:"WXPAY_"`
}

type SignInConfig struct {
	// MaxAmount потолок одного красного конверта, в фэнях.
	MaxAmount     int64         `env:"MAX_AMOUNT"      envDefault:"20000" validate:"gt=0"`
	RatePerMinute int           `env:"RATE_PER_MINUTE" envDefault:"3"     validate:"gt=0"`
	LockTTL       time.Duration `env:"LOCK_TTL"        envDefault:"30s"   validate:"gt=0"`
}

type ReconcileConfig struct {
	Workers       uint          `env:"WORKERS"         envDefault:"5"   validate:"gt=0"`
	Limit         uint          `env:"LIMIT"           envDefault:"50"  validate:"gt=0"`
	Interval      time.Duration `env:"INTERVAL"        envDefault:"30s" validate:"gt=0"`
	NotFoundGrace time.Duration `env:"NOT_FOUND_GRACE" envDefault:"10m" validate:"gt=0"`
}

type WxPayConfig struct {
	AppID          string `env:"APPID"            envDefault:"wxb9f4f763e5d4a6de"`
	MchID          string `env:"MCHID"            envDefault:"1368139500"`
	CertSerialNo   string `env:"CERT_SERIAL_NO"`
	PrivateKeyPath string `env:"PRIVATE_KEY_PATH"`
	PublicKeyID    string `env:"PUBLIC_KEY_ID"`
	PublicKeyPath  string `env:"PUBLIC_KEY_PATH"`
	APIv3Key       string `env:"API_V3_KEY"                                                        validate:"omitempty,len=32"`
	NotifyURL      string `env:"NOTIFY_URL"       envDefault:"http://wepay.selfknow.cn/transfer/notify" validate:"omitempty,url"`
	Host           string `env:"HOST"             envDefault:"https://api.mch.weixin.qq.com"          validate:"omitempty,url"`
}

// LoadConfig читает необязательный .env, затем переменные окружения. Значения, которых нет в окружении,
// берутся из аргументов командной строки.
func LoadConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var envConfig Config
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %w", envParseErr)
	}

	flagsConfig, flagsErr := loadFlags(args)
	if flagsErr != nil {
		return nil, flagsErr
	}

	conf := mergeConfig(&envConfig, flagsConfig)
	if err := validator.New().Struct(conf); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(args []string) (*Config, error) {
	var flagConfig Config
	flags := flag.NewFlagSet("wepay", flag.ContinueOnError)
	flags.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flags.StringVar(&flagConfig.RedisAddr, "r", "localhost:6379", "Redis address in format host:port")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	return &flagConfig, nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
