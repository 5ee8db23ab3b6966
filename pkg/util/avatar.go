package util

import (
	"fmt"
	"net/url"
)

// AvatarURL builds a generated avatar image URL from a display name
func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=6366f1&color=fff",
		url.QueryEscape(name))
}
