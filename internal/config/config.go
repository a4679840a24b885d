package config

import "github.com/spf13/viper"

// Config holds the runtime settings. Every value has a default and can
// be overridden through the environment or an optional config.yaml in
// the working directory.
type Config struct {
	HTTPAddr          string
	DatabaseURL       string
	RedisAddr         string
	JWTSecret         string
	MediaDir          string
	LowStockThreshold int

	AlertFrom        string
	AlertTo          string
	SMTPServer       string
	SMTPPort         string
	SMTPUser         string
	SMTPPassword     string
	SMTPAuthDisabled bool
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "storefront-redis:6379")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("media_dir", "media")
	v.SetDefault("low_stock_threshold", 10)
	v.SetDefault("alert_from", "")
	v.SetDefault("alert_to", "")
	v.SetDefault("smtp_server", "")
	v.SetDefault("smtp_port", "587")
	v.SetDefault("smtp_user", "")
	v.SetDefault("smtp_pass", "")
	v.SetDefault("smtp_auth_disabled", false)

	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		HTTPAddr:          v.GetString("http_addr"),
		DatabaseURL:       v.GetString("database_url"),
		RedisAddr:         v.GetString("redis_addr"),
		JWTSecret:         v.GetString("jwt_secret"),
		MediaDir:          v.GetString("media_dir"),
		LowStockThreshold: v.GetInt("low_stock_threshold"),
		AlertFrom:         v.GetString("alert_from"),
		AlertTo:           v.GetString("alert_to"),
		SMTPServer:        v.GetString("smtp_server"),
		SMTPPort:          v.GetString("smtp_port"),
		SMTPUser:          v.GetString("smtp_user"),
		SMTPPassword:      v.GetString("smtp_pass"),
		SMTPAuthDisabled:  v.GetBool("smtp_auth_disabled"),
	}, nil
}
