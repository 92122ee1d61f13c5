// internal/config/config.go

// Package config 讀取程式設定。
// 來源優先序（高 → 低）：CLI 旗標、環境變數（BANK_ 前綴）、設定檔 bank.yaml、預設值。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 為全部設定值。
type Config struct {
	// Currency 為金額顯示的幣別標籤，預設 FRW。
	Currency string `mapstructure:"currency"`
	// Transcript 若非空，session 結束時將紀錄匯出到此路徑。
	Transcript string     `mapstructure:"transcript"`
	HTTP       HTTPConfig `mapstructure:"http"`
	Log        LogConfig  `mapstructure:"log"`
}

// HTTPConfig 為 serve 指令的設定。
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig 為診斷日誌設定（寫到 stderr，與交易紀錄無關）。
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// EnvPrefix 為環境變數前綴，例如 BANK_HTTP_ADDR。
const EnvPrefix = "BANK"

// SetDefaults 註冊所有鍵的預設值；未註冊的鍵無法由環境變數覆寫。
func SetDefaults(v *viper.Viper) {
	v.SetDefault("currency", "FRW")
	v.SetDefault("transcript", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
}

// Load 依序套用預設值、設定檔與環境變數，並解碼為 Config。
// file 為空時在工作目錄尋找 bank.yaml；找不到設定檔不算錯誤。
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("bank")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Currency = strings.TrimSpace(cfg.Currency)
	if cfg.Currency == "" {
		return Config{}, errors.New("config: currency must not be empty")
	}
	return cfg, nil
}
