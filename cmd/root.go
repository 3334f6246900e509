package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"movia-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "movia",
	Short: "TMDB catalog sync and API",
	Long: `Movia mirrors TMDB movie and TV series details into a relational
database, together with their genres, production companies, production
countries and spoken languages, and serves the result over HTTP.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, same layout as printed by the config command)")
}

// initConfig loads env files, then an optional config file. Environment
// variables still win over the file.
func initConfig() {
	loadEnvFile()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("movia")
	}

	config.Bind(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Could not read config file %s: %v\n", cfgFile, err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// loadEnvFile loads the first of envs/.env.$GO_ENV, envs/.env.local and
// envs/.env that exists. Missing files are not an error.
func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stderr)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	wd, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	for _, name := range []string{".env." + env, ".env.local", ".env"} {
		envFile := filepath.Join(wd, "envs", name)
		if err := godotenv.Load(envFile); err == nil {
			log.Debugf("Environment loaded from file %s", envFile)
			return
		}
	}
}
