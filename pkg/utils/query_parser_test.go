package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterDefaults(t *testing.T) {
	f := ParseFilter(url.Values{})

	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 0, f.Offset)
	assert.Equal(t, 1, f.Page)
	assert.True(t, f.WithPagination)
	assert.Empty(t, f.Search)
}

func TestParseFilterBracketedKeys(t *testing.T) {
	q := url.Values{}
	q.Set("filter[role]", "agent")
	q.Set("filter[is_active]", "true")
	q.Set("sort[created_at]", "desc")
	q.Set("search", "lena")

	f := ParseFilter(q)

	assert.Equal(t, "agent", f.Filter["role"])
	assert.Equal(t, "true", f.Filter["is_active"])
	assert.Equal(t, "desc", f.Sort["created_at"])
	assert.Equal(t, "lena", f.Search)
}

func TestParseFilterPageComputesOffset(t *testing.T) {
	q := url.Values{}
	q.Set("page", "3")
	q.Set("limit", "20")

	f := ParseFilter(q)

	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 40, f.Offset)
	assert.Equal(t, 3, f.Page)
}

func TestParseFilterOffsetWinsOverPage(t *testing.T) {
	q := url.Values{}
	q.Set("offset", "25")
	q.Set("page", "9")

	f := ParseFilter(q)

	assert.Equal(t, 25, f.Offset)
	assert.Equal(t, 3, f.Page)
}

func TestParseFilterLimitIsCapped(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "5000")

	f := ParseFilter(q)

	assert.Equal(t, MaxLimit, f.Limit)
}

func TestParseFilterPaginationOptOut(t *testing.T) {
	q := url.Values{}
	q.Set("withPagination", "false")

	f := ParseFilter(q)

	assert.False(t, f.WithPagination)
}
