package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	// запускаемся из пустой директории, чтобы не подхватить .env.
	s.T().Chdir(s.T().TempDir())
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := LoadConfig([]string{"-d", "postgres://localhost/wepay"})
	s.Require().NoError(err)

	s.Equal("localhost:8080", conf.RunAddress)
	s.Equal("postgres://localhost/wepay", conf.DatabaseDSN)
	s.Equal("internal/db/migrations", conf.MigrationsDir)
	s.Equal("localhost:6379", conf.RedisAddr)
	s.Equal(int64(20000), conf.SignIn.MaxAmount)
	s.Equal(3, conf.SignIn.RatePerMinute)
	s.Equal(30*time.Second, conf.Reconcile.Interval)
	s.Equal("wxb9f4f763e5d4a6de", conf.WxPay.AppID)
	s.Equal("1368139500", conf.WxPay.MchID)
	s.Equal("http://wepay.selfknow.cn/transfer/notify", conf.WxPay.NotifyURL)
	s.Equal("https://api.mch.weixin.qq.com", conf.WxPay.Host)
}

func (s *ConfigTestSuite) TestEnvOverFlags() {
	s.T().Setenv("RUN_ADDRESS", ":9090")
	s.T().Setenv("DATABASE_URI", "postgres://db/wepay")
	s.T().Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	s.T().Setenv("RECONCILE_WORKERS", "8")
	s.T().Setenv("WXPAY_API_V3_KEY", "0123456789abcdef0123456789abcdef")

	conf, err := LoadConfig([]string{"-a", ":7070", "-d", "postgres://flag/wepay"})
	s.Require().NoError(err)

	s.Equal(":9090", conf.RunAddress)
	s.Equal("postgres://db/wepay", conf.DatabaseDSN)
	s.Equal([]string{"https://a.example.com", "https://b.example.com"}, conf.CORSOrigins)
	s.Equal(uint(8), conf.Reconcile.Workers)
	s.Equal("0123456789abcdef0123456789abcdef", conf.WxPay.APIv3Key)
}

func (s *ConfigTestSuite) TestValidation() {
	_, err := LoadConfig(nil)
	s.Require().Error(err, "database DSN is required")

	s.T().Setenv("WXPAY_API_V3_KEY", "short")
	_, err = LoadConfig([]string{"-d", "postgres://localhost/wepay"})
	s.Require().Error(err)
}
