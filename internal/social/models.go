package social

import (
	"regexp"

	dErrors "socialboot/pkg/domain-errors"
)

// Platform is the closed set of networks a profile can link.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
)

func (p Platform) IsValid() bool {
	switch p {
	case PlatformInstagram, PlatformYouTube, PlatformTwitter, PlatformTikTok, PlatformLinkedIn, PlatformFacebook:
		return true
	}
	return false
}

var profileURL = regexp.MustCompile(`^https?://.+`)

// Profile is a linked social account of the session user.
type Profile struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Platform  Platform `json:"platform"`
	Username  string   `json:"username"`
	URL       string   `json:"url"`
	Followers int      `json:"followers"`
}

// Input is the caller-editable part of a Profile.
type Input struct {
	Platform  Platform
	Username  string
	URL       string
	Followers int
}

// Validate applies the profile form rules.
func (in Input) Validate() error {
	switch {
	case in.Platform == "":
		return dErrors.New(dErrors.CodeValidation, "Platform is required")
	case !in.Platform.IsValid():
		return dErrors.New(dErrors.CodeValidation, "Platform is not supported")
	case in.Username == "":
		return dErrors.New(dErrors.CodeValidation, "Username is required")
	case in.URL == "":
		return dErrors.New(dErrors.CodeValidation, "URL is required")
	case !profileURL.MatchString(in.URL):
		return dErrors.New(dErrors.CodeValidation, "URL must start with http:// or https://")
	case in.Followers < 0:
		return dErrors.New(dErrors.CodeValidation, "Followers cannot be negative")
	}
	return nil
}
