// Package config provides configuration management for the CPay form service.
// Configuration can be loaded from YAML files and overridden by environment variables.
package config

import (
	"cpay/entity"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"sync"
)

const (
	ValidationStrict  = "strict"
	ValidationLenient = "lenient"
)

// Config holds all configuration for the CPay form service.
// Values can be set via YAML configuration file or environment variables.
// Environment variables take precedence over YAML values.
type Config struct {
	IsDebug    bool   `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	Validation string `yaml:"validation" env:"VALIDATION" env-default:"strict"`
	LogRecords int64  `yaml:"log_records" env:"LOG_RECORDS" env-default:"0"`
	Listen     struct {
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env:"PORT" env-default:"5200"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:""`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:""`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:""`
	} `yaml:"mongo"`
	Merchant struct {
		AuthKey        string `yaml:"auth_key" env:"MERCHANT_AUTH_KEY" env-default:""`
		PayToMerchant  string `yaml:"pay_to_merchant" env:"MERCHANT_PAY_TO" env-default:""`
		MerchantName   string `yaml:"merchant_name" env:"MERCHANT_NAME" env-default:""`
		PaymentOkUrl   string `yaml:"payment_ok_url" env:"MERCHANT_PAYMENT_OK_URL" env-default:""`
		PaymentFailUrl string `yaml:"payment_fail_url" env:"MERCHANT_PAYMENT_FAIL_URL" env-default:""`
		IsProduction   bool   `yaml:"is_production" env:"MERCHANT_IS_PRODUCTION" env-default:"false"`
	} `yaml:"merchant"`
}

var instance *Config
var once sync.Once

// GetConfig loads configuration from the specified YAML file path.
// A .env file in the working directory, if present, is loaded into the
// environment first. This function only loads the config once.
//
// Example:
//
//	cfg, err := config.GetConfig("config.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		_ = godotenv.Load()
		instance, err = Load(path)
	})
	return instance, err
}

// Load reads and checks a configuration without caching it.
func Load(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("load config: %w; %s", err, desc)
	}
	if err := conf.Check(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Check reports configuration values the service cannot start with.
func (c *Config) Check() error {
	if c.Validation != ValidationStrict && c.Validation != ValidationLenient {
		return fmt.Errorf("unknown validation mode: %s", c.Validation)
	}
	if c.Merchant.AuthKey == "" || c.Merchant.PayToMerchant == "" {
		return fmt.Errorf("merchant not configured")
	}
	return nil
}

// MerchantConfig returns the merchant identity; the result is not tied to the config.
func (c *Config) MerchantConfig() entity.MerchantConfig {
	return entity.MerchantConfig{
		AuthKey:        c.Merchant.AuthKey,
		PayToMerchant:  c.Merchant.PayToMerchant,
		MerchantName:   c.Merchant.MerchantName,
		PaymentOkUrl:   c.Merchant.PaymentOkUrl,
		PaymentFailUrl: c.Merchant.PaymentFailUrl,
		IsProduction:   c.Merchant.IsProduction,
	}
}

func (c *Config) IsStrict() bool {
	return c.Validation != ValidationLenient
}
