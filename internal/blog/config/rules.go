package config

// RulesConfig содержит настраиваемые бизнес-правила.
type RulesConfig struct {
	UsernameCooldownDays int `yaml:"username_cooldown_days" env:"BLOG_USERNAME_COOLDOWN_DAYS" env-default:"30"`
}
