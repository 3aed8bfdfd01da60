package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/idilsaglam/board/internal/model"
)

// Config holds application configuration.
type Config struct {
	Theme   string
	Mouse   bool
	Debug   string // path of the debug log file, empty to disable
	Columns []Column
}

// Column describes one board column and its starting cards.
type Column struct {
	Name  string
	Cards []string
}

// Load reads configuration from file and env. The file is TOML, from
// $BOARD_CONFIG or ~/.config/board/config.toml; env var overrides use
// prefix BOARD_. Defaults describe a three-column starter board so the
// app runs with no file present.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("theme", "classic")
	v.SetDefault("mouse", true)
	v.SetDefault("debug", "")
	v.SetDefault("columns", defaultColumns())

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "board"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if len(c.Columns) == 0 {
		return fmt.Errorf("config: at least one column is required")
	}
	seen := make(map[string]bool, len(c.Columns))
	for _, col := range c.Columns {
		name := strings.TrimSpace(col.Name)
		if name == "" {
			return fmt.Errorf("config: column with empty name")
		}
		if seen[name] {
			return fmt.Errorf("config: duplicate column %q", name)
		}
		seen[name] = true
	}
	return nil
}

// InitialSnapshot builds the starting board state from the configured
// layout. Card ids are assigned here, once, at bootstrap.
func (c Config) InitialSnapshot() model.Snapshot {
	order := make([]string, 0, len(c.Columns))
	for _, col := range c.Columns {
		order = append(order, col.Name)
	}
	s := model.New(order...)
	for _, col := range c.Columns {
		for _, label := range col.Cards {
			s.Cards[col.Name] = append(s.Cards[col.Name], model.NewItem(label))
		}
	}
	return s
}

func defaultColumns() []map[string]any {
	return []map[string]any{
		{"name": "Todo", "cards": []string{"Water the plants", "Book dentist", "Write changelog"}},
		{"name": "Doing", "cards": []string{"Fix the squeaky door"}},
		{"name": "Done", "cards": []string{"Pay rent"}},
	}
}
