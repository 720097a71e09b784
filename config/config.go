package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Store       string `mapstructure:"STORE"`
	MongoDBURI  string `mapstructure:"MONGO_DB_URI"`
	CassDB      string `mapstructure:"CASS_DB"`
	DataDir     string `mapstructure:"DATA_DIR"`
	SessionFile string `mapstructure:"SESSION_FILE"`
	LogFile     string `mapstructure:"LOG_FILE"`

	SecretKey     string `mapstructure:"SECRET_KEY"`
	TokenTTLHours int    `mapstructure:"TOKEN_TTL_HOURS"`

	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`

	EmailFrom string `mapstructure:"EMAIL_FROM"`
	SMTPHost  string `mapstructure:"SMTP_HOST"`
	SMTPPass  string `mapstructure:"SMTP_PASS"`
	SMTPPort  int    `mapstructure:"SMTP_PORT"`
	SMTPUser  string `mapstructure:"SMTP_USER"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigType("env")
	viper.SetConfigName(".env")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("STORE", "mongo")
	viper.SetDefault("MONGO_DB_URI", "mongodb://localhost:27017")
	viper.SetDefault("CASS_DB", "localhost")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("SESSION_FILE", "data/session.json")
	viper.SetDefault("LOG_FILE", "logs/logfile.log")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("CLIENT_ORIGIN", "http://localhost:4028")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		// Running without a .env file is fine, environment takes over.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
