package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "courseadmin/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	SendCredentialsEmail  bool
	TeacherPasswordLength int
	RoleCacheTTL          time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		SendCredentialsEmail:  getEnvAsBool("SEND_CREDENTIALS_EMAIL", false),
		TeacherPasswordLength: getEnvAsInt("TEACHER_PASSWORD_LENGTH", 12),
		RoleCacheTTL:          time.Minute * time.Duration(getEnvAsInt("ROLE_CACHE_TTL_MINUTES", 60)),
	}
}

// GetSendCredentialsEmail returns whether teacher creation emails the generated credentials.
func (c *Config) GetSendCredentialsEmail() bool {
	return c.SendCredentialsEmail
}

// GetTeacherPasswordLength returns the length of generated teacher passwords.
func (c *Config) GetTeacherPasswordLength() int {
	return c.TeacherPasswordLength
}

// GetRoleCacheTTL returns how long cached role lookups stay valid.
func (c *Config) GetRoleCacheTTL() time.Duration {
	return c.RoleCacheTTL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
