package formatting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayDate(t *testing.T) {
	dt := time.Date(2026, time.March, 4, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 4, 2026", DisplayDate(dt))
}

func TestISODate(t *testing.T) {
	dt := time.Date(2026, time.March, 4, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-04T10:30:00Z", ISODate(dt))
}

func TestHostFromURL(t *testing.T) {
	assert.Equal(t, "google.com", HostFromURL("http://google.com/search"))
	assert.Equal(t, "go.dev", HostFromURL("https://go.dev"))
	assert.Equal(t, "", HostFromURL("not-a-url"))
	assert.Equal(t, "", HostFromURL(""))
}
