package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  QueueConfig
		wantErr bool
	}{
		{"valid", QueueConfig{Quantum: 10, Allotment: 50}, false},
		{"zero quantum", QueueConfig{Quantum: 0, Allotment: 50}, true},
		{"negative allotment", QueueConfig{Quantum: 10, Allotment: -1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQueueConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobConfig_Validate(t *testing.T) {
	assert.NoError(t, JobConfig{}.Validate())
	assert.NoError(t, JobConfig{ArrivalTime: 3, Workload: 10, IOInterval: 2, IODuration: 5}.Validate())
	assert.ErrorIs(t, JobConfig{ArrivalTime: -1}.Validate(), ErrInvalidJobConfig)
	assert.ErrorIs(t, JobConfig{Workload: -1}.Validate(), ErrInvalidJobConfig)
	assert.ErrorIs(t, JobConfig{IOInterval: -1}.Validate(), ErrInvalidJobConfig)
	assert.ErrorIs(t, JobConfig{IODuration: -1}.Validate(), ErrInvalidJobConfig)
}

func TestSchedulerConfig_Validate(t *testing.T) {
	assert.NoError(t, SchedulerConfig{}.Validate())
	assert.ErrorIs(t, SchedulerConfig{PriorityBoostInterval: -5}.Validate(), ErrInvalidSchedulerConfig)
}

func TestValidateQueueConfigs(t *testing.T) {
	assert.ErrorIs(t, ValidateQueueConfigs(nil), ErrNoQueues)

	err := ValidateQueueConfigs([]QueueConfig{{Quantum: 1, Allotment: 1}, {Quantum: 0, Allotment: 1}})
	assert.ErrorIs(t, err, ErrInvalidQueueConfig)
	assert.Contains(t, err.Error(), "queue 1")
}
