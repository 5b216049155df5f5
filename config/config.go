package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string
	NarrativeURL string
	NarrativeKey string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// GetNarrativeURL returns the narrative service endpoint from the config
func (c *AppConfig) GetNarrativeURL() string {
	return c.NarrativeURL
}

// GetNarrativeKey returns the narrative service API key from the config
func (c *AppConfig) GetNarrativeKey() string {
	return c.NarrativeKey
}
