package config

func ValidateForRun(cfg *Config) error {
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	if err := cfg.Schedule.Validate(); err != nil {
		return err
	}
	return nil
}
