package sitecontent_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

func TestFormatReadableTime(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024 14:30", sitecontent.FormatReadableTime(&ts))

	assert.Equal(t, "", sitecontent.FormatReadableTime(nil))
	zero := time.Time{}
	assert.Equal(t, "", sitecontent.FormatReadableTime(&zero))
}

func TestResolveDateRange(t *testing.T) {
	r, err := sitecontent.ResolveDateRange("create", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	// End is exclusive and covers the whole last day.
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), r.End)

	// Single-day range still spans 24 hours.
	r, err = sitecontent.ResolveDateRange("create", "2024-01-15", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, r.End.Sub(r.Start))
}

func TestResolveDateRangeRejectsBadInput(t *testing.T) {
	_, err := sitecontent.ResolveDateRange("create", "01-01-2024", "2024-01-31")
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))

	_, err = sitecontent.ResolveDateRange("create", "2024-02-01", "2024-01-01")
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
	assert.Contains(t, err.Error(), "start date cannot exceed")
}

func TestResolvePagination(t *testing.T) {
	p, err := sitecontent.ResolvePagination(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 10, p.Limit)

	p, err = sitecontent.ResolvePagination(3, 20)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Offset)

	// Zero limit means unlimited.
	p, err = sitecontent.ResolvePagination(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Limit)

	_, err = sitecontent.ResolvePagination(0, 10)
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))

	_, err = sitecontent.ResolvePagination(1, -1)
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
}
