package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJobs_SameSeed_Deterministic(t *testing.T) {
	spec := RandomJobSpec{Seed: 42, NumJobs: 20, MaxWorkload: 100, MaxIOInterval: 10, IODuration: 5, MaxArrival: 50}

	a, err := GenerateJobs(spec)
	require.NoError(t, err)
	b, err := GenerateJobs(spec)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateJobs_RespectsBounds(t *testing.T) {
	spec := RandomJobSpec{Seed: 7, NumJobs: 200, MaxWorkload: 30, MaxIOInterval: 6, IODuration: 4, MaxArrival: 20}

	jobs, err := GenerateJobs(spec)
	require.NoError(t, err)
	require.Len(t, jobs, 200)

	for i, j := range jobs {
		assert.GreaterOrEqual(t, j.Workload, int64(1))
		assert.LessOrEqual(t, j.Workload, int64(30))
		assert.GreaterOrEqual(t, j.IOInterval, int64(1))
		assert.LessOrEqual(t, j.IOInterval, int64(6))
		assert.Equal(t, int64(4), j.IODuration)
		assert.GreaterOrEqual(t, j.ArrivalTime, int64(0))
		assert.LessOrEqual(t, j.ArrivalTime, int64(20))
		assert.NoError(t, j.Validate())
		if i > 0 {
			assert.LessOrEqual(t, jobs[i-1].ArrivalTime, j.ArrivalTime, "jobs must be sorted by arrival")
		}
	}
}

func TestGenerateJobs_NoIOAndNoArrivalSpread(t *testing.T) {
	jobs, err := GenerateJobs(RandomJobSpec{Seed: 1, NumJobs: 5, MaxWorkload: 10})
	require.NoError(t, err)

	for _, j := range jobs {
		assert.Equal(t, int64(0), j.IOInterval)
		assert.Equal(t, int64(0), j.ArrivalTime)
	}
}

func TestGenerateJobs_InvalidSpec_ReturnsError(t *testing.T) {
	_, err := GenerateJobs(RandomJobSpec{NumJobs: 3, MaxWorkload: 0})
	assert.Error(t, err)

	_, err = GenerateJobs(RandomJobSpec{NumJobs: -1, MaxWorkload: 5})
	assert.Error(t, err)
}

func TestGenerateJobs_ZeroJobs_ReturnsEmpty(t *testing.T) {
	jobs, err := GenerateJobs(RandomJobSpec{Seed: 3, MaxWorkload: 5})

	require.NoError(t, err)
	assert.Empty(t, jobs)
}
