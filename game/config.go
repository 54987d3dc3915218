package game

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Rounds         int     `mapstructure:"rounds"`
	Seed           int64   `mapstructure:"seed"`
	LogLevel       string  `mapstructure:"logLevel"`
	LogDir         string  `mapstructure:"logDir"`
	ManualDir      string  `mapstructure:"manualDir"`
	ManualName     string  `mapstructure:"manualName"`
	ChiProbability float64 `mapstructure:"chiProbability"` // 机器人吃普通顺子的概率
}

var defaults = map[string]any{
	"rounds":         1,
	"seed":           0,
	"logLevel":       "info",
	"logDir":         "",
	"manualDir":      "initcard",
	"manualName":     "",
	"chiProbability": 0.3,
}

func DefaultConfig() *Config {
	conf, _ := LoadConfig("")
	return conf
}

// LoadConfig 读取yaml配置，环境变量 PAOHUZI_<KEY> 可覆盖，file为空时只用默认值
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix("PAOHUZI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, c.Rounds)
	}
	if c.ChiProbability < 0 || c.ChiProbability > 1 {
		return fmt.Errorf("%w: chiProbability %v out of [0,1]", ErrInvalidConfig, c.ChiProbability)
	}
	return nil
}
