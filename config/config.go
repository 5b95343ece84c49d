package config

import (
	"github.com/spf13/viper"
)

// Config carries everything the process reads from its environment.
// SupabaseURL and SupabaseKey are only required together; when either is
// missing the storage layer falls back to the local database.
type Config struct {
	SupabaseURL  string
	SupabaseKey  string
	RedisAddr    string
	DatabasePath string
	ListenAddr   string
}

// Load reads configuration from an optional .env file and the process
// environment. Environment variables win over the file.
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing .env is fine

	v.AutomaticEnv()
	v.SetDefault("DATABASE_PATH", "items.db")
	v.SetDefault("LISTEN_ADDR", ":8000")

	return &Config{
		SupabaseURL:  v.GetString("SUPABASE_URL"),
		SupabaseKey:  v.GetString("SUPABASE_KEY"),
		RedisAddr:    v.GetString("REDIS_ADDR"),
		DatabasePath: v.GetString("DATABASE_PATH"),
		ListenAddr:   v.GetString("LISTEN_ADDR"),
	}
}
