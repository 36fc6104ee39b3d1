package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	AppPort  string `env:"APP_PORT, default=8080"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	MySQLHost string `env:"MYSQL_HOST, default=mysql"`
	MySQLPort string `env:"MYSQL_PORT, default=3306"`
	MySQLDB   string `env:"MYSQL_DB, default=lending"`
	MySQLUser string `env:"MYSQL_USER, default=lending"`
	MySQLPass string `env:"MYSQL_PASS, default=lending"`

	RedisAddr string `env:"REDIS_ADDR, default=redis:6379"`
	RedisDB   int    `env:"REDIS_DB, default=0"`

	IdempTTLSecs int `env:"IDEMPOTENCY_TTL_SECONDS, default=300"`

	// Principals. AdminID is the single privileged identity permitted to
	// approve loans and verify users; seized collateral is forfeited to it.
	AdminID   string `env:"ADMIN_ID"`
	VaultID   string `env:"VAULT_ID"`
	ReserveID string `env:"RESERVE_ID"`

	// External collaborator endpoints.
	TokenSvcURL string `env:"TOKEN_SVC_URL"`
	NFTSvcURL   string `env:"NFT_SVC_URL"`
	OracleURL   string `env:"ORACLE_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(context.Background(), &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &c, nil
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	for name, v := range map[string]string{
		"ADMIN_ID":   c.AdminID,
		"VAULT_ID":   c.VaultID,
		"RESERVE_ID": c.ReserveID,
	} {
		if !reHex32.MatchString(v) {
			return fmt.Errorf("%s must be a 32-char lowercase hex principal", name)
		}
	}
	if c.TokenSvcURL == "" || c.NFTSvcURL == "" || c.OracleURL == "" {
		return errors.New("missing external service URLs (TOKEN_SVC_URL/NFT_SVC_URL/ORACLE_URL)")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
