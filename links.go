package gramscope

import (
	"net/url"

	"github.com/codeGROOVE-dev/gramscope/report"
)

// ReverseImageLinks builds search URLs for finding other uses of an
// avatar image. No network calls are made.
func ReverseImageLinks(imageURL string) []report.Link {
	enc := url.QueryEscape(imageURL)
	return []report.Link{
		{Name: "Google Lens", URL: "https://lens.google.com/uploadbyurl?url=" + enc},
		{Name: "Yandex", URL: "https://yandex.com/images/search?rpt=imageview&url=" + enc},
		{Name: "TinEye", URL: "https://tineye.com/search?url=" + enc},
		{Name: "Bing", URL: "https://www.bing.com/images/search?view=detailv2&iss=sbi&q=imgurl:" + enc},
	}
}

// CrossPlatformLinks builds profile URLs for the same handle on other
// platforms. The links are candidates to check, not confirmed accounts.
func CrossPlatformLinks(username string) []report.Link {
	u := url.PathEscape(username)
	return []report.Link{
		{Name: "Twitter/X", URL: "https://twitter.com/" + u},
		{Name: "TikTok", URL: "https://tiktok.com/@" + u},
		{Name: "Facebook", URL: "https://facebook.com/" + u},
		{Name: "YouTube", URL: "https://youtube.com/@" + u},
		{Name: "LinkedIn", URL: "https://linkedin.com/in/" + u},
		{Name: "Snapchat", URL: "https://snapchat.com/add/" + u},
		{Name: "Pinterest", URL: "https://pinterest.com/" + u},
		{Name: "Reddit", URL: "https://reddit.com/user/" + u},
		{Name: "GitHub", URL: "https://github.com/" + u},
		{Name: "Twitch", URL: "https://twitch.tv/" + u},
		{Name: "Telegram", URL: "https://t.me/" + u},
		{Name: "OnlyFans", URL: "https://onlyfans.com/" + u},
	}
}
