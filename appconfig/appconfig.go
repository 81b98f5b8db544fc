package appconfig

import "github.com/ilyakaznacheev/cleanenv"

type AppConfig struct {
	StrategyMode       string  `env:"GTO_STRATEGY_MODE" env-default:"hybrid" env-description:"gto_only, exploitative_only or hybrid"`
	GTOWeight          float64 `env:"GTO_WEIGHT" env-default:"0.7"`
	ExploitativeWeight float64 `env:"GTO_EXPLOIT_WEIGHT" env-default:"0.3"`
	RandomSeed         int64   `env:"GTO_RANDOM_SEED" env-default:"0" env-description:"0 seeds from the clock"`
	RangeFile          string  `env:"GTO_RANGE_FILE" env-default:"" env-description:"optional YAML override for the preflop range tables"`
	HistoryLimit       int     `env:"GTO_HISTORY_LIMIT" env-default:"256"`
}

// Load environment variables to AppConfig instance
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
