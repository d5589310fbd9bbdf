package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// arrivingAt creates a ready process whose next schedule time is t.
func arrivingAt(id, t int64) *Process {
	return newProcess(id, JobConfig{ArrivalTime: t, Workload: 10})
}

func processIDs(ps []*Process) []int64 {
	ids := make([]int64, len(ps))
	for i, p := range ps {
		ids[i] = p.ID()
	}
	return ids
}

func TestQueue_AddProcess_Back_PreservesArrivalOrder(t *testing.T) {
	// GIVEN a queue admitting at the back
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20})

	// WHEN three processes are admitted
	q.AddProcess(arrivingAt(0, 0))
	q.AddProcess(arrivingAt(1, 0))
	q.AddProcess(arrivingAt(2, 0))

	// THEN they keep admission order and receive the queue allotment
	assert.Equal(t, []int64{0, 1, 2}, processIDs(q.Items()))
	for _, p := range q.Items() {
		assert.Equal(t, int64(20), p.Allotment())
	}
}

func TestQueue_AddProcess_Front_ReversesOrder(t *testing.T) {
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20, AdmitAtFront: true})

	q.AddProcess(arrivingAt(0, 0))
	q.AddProcess(arrivingAt(1, 0))
	q.AddProcess(arrivingAt(2, 0))

	assert.Equal(t, []int64{2, 1, 0}, processIDs(q.Items()))
}

func TestQueue_AddProcess_ResetsAllotment(t *testing.T) {
	p := arrivingAt(0, 0)
	p.setAllotment(1)
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 40})

	q.AddProcess(p)

	assert.Equal(t, int64(40), p.Allotment())
}

func TestQueue_TakeNextSchedulableProcess_SkipsIneligible(t *testing.T) {
	// GIVEN [0 (next=10), 1 (next=0), 2 (next=0)]
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20})
	q.AddProcess(arrivingAt(0, 10))
	q.AddProcess(arrivingAt(1, 0))
	q.AddProcess(arrivingAt(2, 0))

	// WHEN taking at tick 5
	p := q.TakeNextSchedulableProcess(5)

	// THEN the first eligible member by position is removed
	if assert.NotNil(t, p) {
		assert.Equal(t, int64(1), p.ID())
	}
	assert.Equal(t, []int64{0, 2}, processIDs(q.Items()))
}

func TestQueue_TakeNextSchedulableProcess_NoneEligible_ReturnsNil(t *testing.T) {
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20})
	q.AddProcess(arrivingAt(0, 10))

	assert.False(t, q.HasSchedulableProcess(9))
	assert.Nil(t, q.TakeNextSchedulableProcess(9))
	assert.Equal(t, 1, q.Len())

	assert.True(t, q.HasSchedulableProcess(10))
}

func TestQueue_PutProcessBack_NoBump_Appends(t *testing.T) {
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20})
	q.AddProcess(arrivingAt(0, 50))
	q.AddProcess(arrivingAt(1, 60))

	q.PutProcessBack(arrivingAt(2, 0), false)

	assert.Equal(t, []int64{0, 1, 2}, processIDs(q.Items()))
}

func TestQueue_PutProcessBack_Bump_InsertsBeforeFirstLaterMember(t *testing.T) {
	// GIVEN [a (next=5), b (next=10), c (next=20)]
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20})
	q.AddProcess(arrivingAt(0, 5))
	q.AddProcess(arrivingAt(1, 10))
	q.AddProcess(arrivingAt(2, 20))

	// WHEN x (next=10) is bumped, it goes behind b (equal time) and ahead of c
	q.PutProcessBack(arrivingAt(3, 10), true)
	assert.Equal(t, []int64{0, 1, 3, 2}, processIDs(q.Items()))

	// WHEN y (next=3) is bumped, it goes to the front
	q.PutProcessBack(arrivingAt(4, 3), true)
	assert.Equal(t, []int64{4, 0, 1, 3, 2}, processIDs(q.Items()))

	// WHEN z (next=30) is bumped, nothing is later so it goes to the back
	q.PutProcessBack(arrivingAt(5, 30), true)
	assert.Equal(t, []int64{4, 0, 1, 3, 2, 5}, processIDs(q.Items()))
}

func TestQueue_PutProcessBack_KeepsAllotment(t *testing.T) {
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20})
	p := arrivingAt(0, 0)
	p.setAllotment(3)

	q.PutProcessBack(p, false)

	assert.Equal(t, int64(3), p.Allotment())
}

func TestQueue_PopAll_EmptiesInOrder(t *testing.T) {
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20})
	q.AddProcess(arrivingAt(0, 0))
	q.AddProcess(arrivingAt(1, 0))

	all := q.PopAll()

	assert.Equal(t, []int64{0, 1}, processIDs(all))
	assert.True(t, q.IsEmpty())
	assert.Empty(t, q.PopAll())
}

func TestQueue_String(t *testing.T) {
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20})
	assert.Equal(t, "[]", q.String())

	q.AddProcess(arrivingAt(0, 0))
	q.AddProcess(arrivingAt(1, 0))
	assert.Equal(t, "[0 1]", q.String())
}

func TestQueue_NilProcess_Panics(t *testing.T) {
	q := NewQueue(QueueConfig{Quantum: 5, Allotment: 20})
	assert.Panics(t, func() { q.AddProcess(nil) })
	assert.Panics(t, func() { q.PutProcessBack(nil, true) })
}
