// Package formatting holds the date and URL display helpers shared by the
// bookmark presenters.
package formatting

import (
	"net/url"
	"time"
)

const displayDateFormat = "Jan 2, 2006"

// ISODate renders t in RFC 3339 form.
func ISODate(t time.Time) string {
	return t.Format(time.RFC3339)
}

// DisplayDate renders t in a short human-readable form, e.g. "Mar 4, 2026".
func DisplayDate(t time.Time) string {
	return t.Format(displayDateFormat)
}

// HostFromURL returns the network location of raw, or "" when raw does not
// parse as a URL.
func HostFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
