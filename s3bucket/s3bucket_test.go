package s3bucket_test

import (
	"testing"

	"github.com/programme-lv/leaderboard/s3bucket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	bucket, key, err := s3bucket.ParseURI("s3://proglv-results/rally/data_attempts.json")
	require.NoError(t, err)
	assert.Equal(t, "proglv-results", bucket)
	assert.Equal(t, "rally/data_attempts.json", key)
}

func TestParseURIInvalid(t *testing.T) {
	testCases := []string{
		"https://example.com/a.json",
		"s3://bucket-only",
		"s3:///key-only",
		"s3://bucket/",
		"::::",
	}
	for _, uri := range testCases {
		t.Run(uri, func(t *testing.T) {
			_, _, err := s3bucket.ParseURI(uri)
			assert.Error(t, err)
		})
	}
}

func TestStatusErrorUnwraps(t *testing.T) {
	inner := assert.AnError
	err := &s3bucket.StatusError{Key: "k", StatusCode: 403, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "403")
}
