package onesignal

// notificationRequest is the create-notification payload. Headings and
// contents carry a single "en" entry; the body text itself is localized
// upstream.
type notificationRequest struct {
	AppID            string            `json:"app_id"`
	IncludePlayerIDs []string          `json:"include_player_ids"`
	Headings         map[string]string `json:"headings"`
	Contents         map[string]string `json:"contents"`
	URL              string            `json:"url,omitempty"`
}
