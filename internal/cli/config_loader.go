// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"habithub/internal/config"
	"habithub/internal/logging"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "HABITHUB"

const defaultConfigPath = "config.toml"

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags variables
	cfgFile      string
	logLevel     string
	host         string
	port         int
	dbPath       string
	initConfig   string
	auditEnabled bool
	seedEnabled  bool
)

func registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: HABITHUB_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: HABITHUB_LOGGING_LEVEL)")
	cmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: HABITHUB_DATABASE_PATH)")

	// Server-specific flags
	cmd.Flags().StringVar(&host, "host", "", "Interface the HTTP server binds to. (Env: HABITHUB_SERVER_HOST)")
	cmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: HABITHUB_SERVER_PORT)")
	cmd.Flags().StringVar(&initConfig, "init_config", "", "Path to a TOML file with habits to seed instead of the predefined ones. (Env: HABITHUB_INIT_CONFIG)")
	cmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable audit logging of habit changes. (Env: HABITHUB_LOGGING_AUDIT_ENABLED=true)")
	cmd.Flags().BoolVar(&seedEnabled, "seed", false, "Seed the predefined habits on startup. (Env: HABITHUB_SEED_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
// Precedence: defaults < config file < environment < flags.
func initializeConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	env := newEnv()

	// 1. Check environment variable for config path first
	if envPath := env.GetString("config_path"); envPath != "" && !flagChanged(cmd, "config_path") {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd, env)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)
	goose.SetLogger(logging.Log)

	return nil
}

// newEnv returns a viper instance resolving keys like "server.port" from
// HABITHUB_SERVER_PORT.
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func flagChanged(cmd *cobra.Command, name string) bool {
	var f *pflag.Flag
	if f = cmd.Flags().Lookup(name); f == nil {
		f = cmd.InheritedFlags().Lookup(name)
	}
	return f != nil && f.Changed
}

func applyOverrides(c *config.Config, cmd *cobra.Command, env *viper.Viper) {
	// --- Environment Variables ---
	if env.IsSet("server.host") {
		c.Server.Host = env.GetString("server.host")
	}
	if env.IsSet("server.port") {
		c.Server.Port = env.GetInt("server.port")
	}
	if env.IsSet("database.path") {
		c.Database.Path = env.GetString("database.path")
	}
	if env.IsSet("logging.level") {
		c.Logging.Level = env.GetString("logging.level")
	}
	if env.IsSet("logging.audit_enabled") {
		c.Logging.AuditEnabled = env.GetBool("logging.audit_enabled")
	}
	if env.IsSet("cache.ttl") {
		c.Cache.TTL = env.GetString("cache.ttl")
	}
	if env.IsSet("seed.enabled") {
		c.Seed.Enabled = env.GetBool("seed.enabled")
	}
	if env.IsSet("seed.days") {
		c.Seed.Days = env.GetInt("seed.days")
	}
	if env.IsSet("housekeeping.interval") {
		c.Housekeeping.Interval = env.GetString("housekeeping.interval")
	}
	if env.IsSet("housekeeping.max_age") {
		c.Housekeeping.MaxAge = env.GetString("housekeeping.max_age")
	}
	if env.IsSet("housekeeping.delete_unparseable") {
		c.Housekeeping.DeleteUnparseable = env.GetBool("housekeeping.delete_unparseable")
	}
	if initConfig == "" {
		initConfig = env.GetString("init_config")
	}

	// --- CLI Flags ---
	if host != "" {
		c.Server.Host = host
	}
	if port != 0 {
		c.Server.Port = port
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if flagChanged(cmd, "audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if flagChanged(cmd, "seed") {
		c.Seed.Enabled = seedEnabled
	}

	// --- Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Path == "" {
		c.Database.Path = "habithub.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
