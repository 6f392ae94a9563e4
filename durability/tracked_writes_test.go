package durability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/INLOpen/nexuskv/core"
)

func makeWrite(key string, seqno int64, level core.Level) *SyncWrite {
	return newSyncWrite(&core.Item{
		Key:     core.DocKey(key),
		BySeqno: seqno,
		Durability: core.Requirements{
			Level:   level,
			Timeout: core.Timeout(5000),
		},
	}, time.Now())
}

func TestTrackedWrites_PushBackOrdering(t *testing.T) {
	var tw trackedWrites

	require.NoError(t, tw.PushBack(makeWrite("a", 1, core.LevelMajority)))
	require.NoError(t, tw.PushBack(makeWrite("b", 5, core.LevelMajority)))
	assert.Equal(t, 2, tw.Len())

	// Non-increasing seqnos must be rejected, state untouched.
	err := tw.PushBack(makeWrite("c", 5, core.LevelMajority))
	require.Error(t, err)
	assert.True(t, core.IsOrderError(err), "Duplicate seqno should be an OrderError")

	err = tw.PushBack(makeWrite("c", 3, core.LevelMajority))
	require.Error(t, err)
	assert.True(t, core.IsOrderError(err), "Decreasing seqno should be an OrderError")

	assert.Equal(t, 2, tw.Len())
	assert.Equal(t, int64(5), tw.Back().BySeqno())
}

func TestTrackedWrites_CyclicNext(t *testing.T) {
	var tw trackedWrites

	// Next(end sentinel) on an empty container is still the end sentinel.
	assert.Nil(t, tw.Next(nil))

	first := makeWrite("a", 1, core.LevelMajority)
	second := makeWrite("b", 2, core.LevelMajority)
	require.NoError(t, tw.PushBack(first))
	require.NoError(t, tw.PushBack(second))

	// Next(end sentinel) wraps to the front.
	assert.Same(t, first, tw.Next(nil))
	assert.Same(t, second, tw.Next(first))
	assert.Nil(t, tw.Next(second), "Next of the back is the end sentinel")
}

func TestTrackedWrites_PushFront(t *testing.T) {
	var tw trackedWrites

	require.NoError(t, tw.PushBack(makeWrite("c", 7, core.LevelMajority)))
	tw.PushFront(makeWrite("b", 5, core.LevelMajority))
	tw.PushFront(makeWrite("a", 3, core.LevelMajority))

	var seqnos []int64
	for it := tw.Front(); it != nil; it = tw.Next(it) {
		seqnos = append(seqnos, it.BySeqno())
	}
	assert.Equal(t, []int64{3, 5, 7}, seqnos)
}

func TestTrackedWrites_Erase(t *testing.T) {
	var tw trackedWrites

	a := makeWrite("a", 1, core.LevelMajority)
	b := makeWrite("b", 2, core.LevelMajority)
	c := makeWrite("c", 3, core.LevelMajority)
	require.NoError(t, tw.PushBack(a))
	require.NoError(t, tw.PushBack(b))
	require.NoError(t, tw.PushBack(c))

	require.NoError(t, tw.Erase(b))
	assert.Equal(t, 2, tw.Len())
	assert.Same(t, c, tw.Next(a), "Erasing the middle node should relink its neighbours")

	require.NoError(t, tw.Erase(a))
	assert.Same(t, c, tw.Front())

	require.NoError(t, tw.Erase(c))
	assert.True(t, tw.Empty())
	assert.Nil(t, tw.Front())
	assert.Nil(t, tw.Back())
}

func TestTrackedWrites_EraseEndSentinel(t *testing.T) {
	var tw trackedWrites

	err := tw.Erase(nil)
	require.Error(t, err)
	assert.True(t, core.IsLogicError(err), "Erase on the end sentinel should be a LogicError")
}

func TestTrackedWrites_StableCursorsAcrossEndInsertions(t *testing.T) {
	var tw trackedWrites

	b := makeWrite("b", 5, core.LevelMajority)
	require.NoError(t, tw.PushBack(b))

	// Insertions at either end must not disturb an existing cursor.
	tw.PushFront(makeWrite("a", 3, core.LevelMajority))
	require.NoError(t, tw.PushBack(makeWrite("c", 7, core.LevelMajority)))

	assert.Equal(t, int64(5), b.BySeqno())
	assert.Equal(t, int64(7), tw.Next(b).BySeqno())
	assert.Equal(t, int64(3), tw.Front().BySeqno())
}
