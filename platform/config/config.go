// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// MailConfig provides settings for outbound SMTP delivery.
type MailConfig interface {
	GetMailEnabled() bool
	GetMailHost() string
	GetMailPort() int
	GetMailUsername() string
	GetMailPassword() string
	GetMailFromName() string
	GetMailFromAddress() string
	GetMailOperatorBCC() string
}

// PricingConfig provides the price book values for the estimator.
type PricingConfig interface {
	GetPricing() PricingValues
}

// PricingValues carries the price book numbers loaded from the environment.
// All amounts are euro cents; rates are cents per square meter.
type PricingValues struct {
	CurtainStandardRateCents int64
	CurtainPremiumRateCents  int64
	RollerStandardRateCents  int64
	RollerPremiumRateCents   int64
	PanelStandardRateCents   int64
	PanelPremiumRateCents    int64

	CurtainMinimumCents int64
	RollerMinimumCents  int64
	PanelMinimumCents   int64

	InstallFeeCents        int64
	UrgencyFeeCents        int64
	BlackoutRateCentsPerM2 int64
	RailFeeCents           int64
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	MailEnabled     bool
	MailHost        string
	MailPort        int
	MailUsername    string
	MailPassword    string
	MailFromName    string
	MailFromAddress string
	MailOperatorBCC string

	Pricing PricingValues
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// MailConfig implementation
func (c *Config) GetMailEnabled() bool       { return c.MailEnabled }
func (c *Config) GetMailHost() string        { return c.MailHost }
func (c *Config) GetMailPort() int           { return c.MailPort }
func (c *Config) GetMailUsername() string    { return c.MailUsername }
func (c *Config) GetMailPassword() string    { return c.MailPassword }
func (c *Config) GetMailFromName() string    { return c.MailFromName }
func (c *Config) GetMailFromAddress() string { return c.MailFromAddress }
func (c *Config) GetMailOperatorBCC() string { return c.MailOperatorBCC }

// PricingConfig implementation
func (c *Config) GetPricing() PricingValues { return c.Pricing }

// Load reads configuration from environment variables.
// Required mail settings are validated here, at startup, so a broken
// deployment fails before the first request instead of during it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "https://guialar.net"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		CORSAllowAll:   corsAllowAll,
		CORSOrigins:    corsOrigins,
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),

		MailEnabled:     strings.EqualFold(getEnv("MAIL_ENABLED", "true"), "true"),
		MailHost:        getEnv("MAIL_HOST", ""),
		MailPort:        int(mustInt64(getEnv("MAIL_PORT", "587"))),
		MailUsername:    getEnv("MAIL_USERNAME", ""),
		MailPassword:    getEnv("MAIL_PASSWORD", ""),
		MailFromName:    getEnv("MAIL_FROM_NAME", "Guialar"),
		MailFromAddress: getEnv("MAIL_FROM_ADDRESS", ""),
		MailOperatorBCC: getEnv("MAIL_OPERATOR_BCC", ""),

		Pricing: loadPricing(),
	}

	if cfg.MailEnabled {
		if cfg.MailHost == "" {
			return nil, fmt.Errorf("MAIL_HOST is required when MAIL_ENABLED is true")
		}
		if cfg.MailFromAddress == "" {
			return nil, fmt.Errorf("MAIL_FROM_ADDRESS is required when MAIL_ENABLED is true")
		}
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

// loadPricing reads the price book from the environment. Every number can be
// overridden per deployment without a code change; the authoritative business
// rates live in deployment config, not in source.
func loadPricing() PricingValues {
	return PricingValues{
		CurtainStandardRateCents: mustInt64(getEnv("PRICE_RATE_CURTAIN_STANDARD", "2500")),
		CurtainPremiumRateCents:  mustInt64(getEnv("PRICE_RATE_CURTAIN_PREMIUM", "3900")),
		RollerStandardRateCents:  mustInt64(getEnv("PRICE_RATE_ROLLER_STANDARD", "3200")),
		RollerPremiumRateCents:   mustInt64(getEnv("PRICE_RATE_ROLLER_PREMIUM", "4500")),
		PanelStandardRateCents:   mustInt64(getEnv("PRICE_RATE_PANEL_STANDARD", "3600")),
		PanelPremiumRateCents:    mustInt64(getEnv("PRICE_RATE_PANEL_PREMIUM", "5200")),

		CurtainMinimumCents: mustInt64(getEnv("PRICE_MINIMUM_CURTAIN", "6000")),
		RollerMinimumCents:  mustInt64(getEnv("PRICE_MINIMUM_ROLLER", "7500")),
		PanelMinimumCents:   mustInt64(getEnv("PRICE_MINIMUM_PANEL", "9000")),

		InstallFeeCents:        mustInt64(getEnv("PRICE_INSTALL_FEE", "3500")),
		UrgencyFeeCents:        mustInt64(getEnv("PRICE_URGENCY_FEE", "2500")),
		BlackoutRateCentsPerM2: mustInt64(getEnv("PRICE_BLACKOUT_RATE", "900")),
		RailFeeCents:           mustInt64(getEnv("PRICE_RAIL_FEE", "1800")),
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
