package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 4, 6)
	assert.EqualValues(t, 2, p.TotalPages)
	assert.EqualValues(t, 6, p.TotalItems)
	assert.False(t, p.HasMore)

	p = NewPagination(1, 4, 6)
	assert.True(t, p.HasMore)
}

func TestJobPaginationAlwaysCarriesTotalJobs(t *testing.T) {
	body, err := json.Marshal(NewJobPagination(1, 20, 0))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"total_jobs":0`,
		"an empty job search still reports total_jobs")

	body, err = json.Marshal(NewPagination(1, 20, 0))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "total_jobs",
		"non-job listings do not carry the key")
}
