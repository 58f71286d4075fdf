// Package config 載入 chatbot 設定: 機構名稱、幣別、初始帳戶與 log 環境。
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/domain"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Env         string    `yaml:"env" env-default:"local"`
	Institution string    `yaml:"institution" env-default:"PiXELL River Financial"`
	Currency    string    `yaml:"currency" env-default:"USD"`
	Accounts    []Account `yaml:"accounts"`
}

// Account 初始帳戶，balance 以字串保存以維持精確小數
type Account struct {
	ID      int64  `yaml:"id"`
	Balance string `yaml:"balance"`
}

// Default 回傳內建設定 (兩個固定帳戶)
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse default config: %w", err)
	}
	return &cfg, nil
}

// Load 載入設定
// path 為空時使用內建設定；檔案缺少的欄位以 env-default 補齊，未列帳戶時沿用內建帳戶
func Load(path string) (*Config, error) {
	def, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return def, def.Validate()
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if len(cfg.Accounts) == 0 {
		cfg.Accounts = def.Accounts
	}
	return &cfg, cfg.Validate()
}

// Validate 檢查設定內容
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}
	if c.Institution == "" {
		return errors.New("institution must not be empty")
	}
	if err := domain.ValidateCurrency(c.Currency); err != nil {
		return fmt.Errorf("currency %q: %w", c.Currency, err)
	}
	_, err := c.SeedAccounts()
	return err
}

// SeedAccounts 依設定建立初始帳戶 Map
// 帳號不可重複，餘額不可為負
func (c *Config) SeedAccounts() (map[int64]*domain.Account, error) {
	accounts := make(map[int64]*domain.Account, len(c.Accounts))
	for _, a := range c.Accounts {
		if _, ok := accounts[a.ID]; ok {
			return nil, fmt.Errorf("duplicate account %d", a.ID)
		}
		balance, err := decimal.NewFromString(a.Balance)
		if err != nil {
			return nil, fmt.Errorf("account %d balance %q: %w", a.ID, a.Balance, err)
		}
		if balance.IsNegative() {
			return nil, fmt.Errorf("account %d balance must not be negative", a.ID)
		}
		accounts[a.ID] = domain.NewAccount(a.ID, balance)
	}
	return accounts, nil
}
