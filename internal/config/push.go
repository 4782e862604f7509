package config

import "os"

const (
	pushAppIDEnv       = "ONESIGNAL_APP_ID"
	pushAPIKeyEnv      = "ONESIGNAL_API_KEY"
	pushAPIURLEnv      = "ONESIGNAL_API_URL"
	pushDeepLinkURLEnv = "PUSH_DEEP_LINK_URL"

	defaultDeepLinkURL = "https://web-planning-hub.vercel.app/index.html"
)

// PushConfig carries the push gateway credentials. Missing credentials are
// not a startup error; cycles run and report the gap in their debug payload.
type PushConfig struct {
	AppID       string
	APIKey      string
	APIURL      string
	DeepLinkURL string
}

func LoadPushConfig() *PushConfig {
	deepLink := os.Getenv(pushDeepLinkURLEnv)
	if deepLink == "" {
		deepLink = defaultDeepLinkURL
	}

	return &PushConfig{
		AppID:       os.Getenv(pushAppIDEnv),
		APIKey:      os.Getenv(pushAPIKeyEnv),
		APIURL:      os.Getenv(pushAPIURLEnv),
		DeepLinkURL: deepLink,
	}
}

// Configured reports whether both credentials are present.
func (c *PushConfig) Configured() bool {
	return c != nil && c.AppID != "" && c.APIKey != ""
}
