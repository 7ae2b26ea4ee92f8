package dto

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	page := ParsePage(url.Values{}, DefaultContentPageSize)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 0, page.Offset)

	page = ParsePage(url.Values{"limit": {"7"}, "skip": {"14"}}, DefaultContentPageSize)
	assert.Equal(t, 7, page.Limit)
	assert.Equal(t, 14, page.Offset)

	// limit clamps, skip does not
	page = ParsePage(url.Values{"limit": {"5000"}, "skip": {"5000"}}, DefaultContactPageSize)
	assert.Equal(t, MaxPageSize, page.Limit)
	assert.Equal(t, 5000, page.Offset)

	// an explicit zero limit requests an empty page
	page = ParsePage(url.Values{"limit": {"0"}}, DefaultContentPageSize)
	assert.Equal(t, 0, page.Limit)

	// garbage and negative values fall back to defaults
	page = ParsePage(url.Values{"limit": {"abc"}, "skip": {"-3"}}, DefaultContactPageSize)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, 0, page.Offset)

	page = ParsePage(url.Values{"limit": {"-5"}}, DefaultContentPageSize)
	assert.Equal(t, 20, page.Limit)
}

func TestParseOptionalBool(t *testing.T) {
	// absent parameter means no filter at all
	assert.Nil(t, ParseOptionalBool(url.Values{}, "published"))

	for _, truthy := range []string{"true", "1", "yes", "on", "TRUE", "Yes"} {
		v := ParseOptionalBool(url.Values{"published": {truthy}}, "published")
		require.NotNil(t, v, "value %q", truthy)
		assert.True(t, *v, "value %q", truthy)
	}

	for _, falsy := range []string{"false", "0", "no", "off", "banana", ""} {
		v := ParseOptionalBool(url.Values{"published": {falsy}}, "published")
		require.NotNil(t, v, "value %q", falsy)
		assert.False(t, *v, "value %q", falsy)
	}
}
