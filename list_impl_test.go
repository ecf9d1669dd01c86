package simplelist

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/log"
)

func TestList_Empty(t *testing.T) {
	testList := newList[int]()

	require.True(t, testList.IsEmpty())
	require.EqualValues(t, 0, testList.Size())
	require.False(t, testList.head.IsSet())
	require.False(t, testList.tail.IsSet())

	first, err := testList.First()
	require.ErrorIs(t, err, ErrEmptyList)
	require.Nil(t, first)

	last, err := testList.Last()
	require.ErrorIs(t, err, ErrEmptyList)
	require.Nil(t, last)

	testList.Apply(func(*Node[int]) { require.Fail(t, "callback must not be called on an empty list") })
	testList.ApplyReverse(func(*Node[int]) { require.Fail(t, "callback must not be called on an empty list") })
	require.Empty(t, testList.Values())
}

func TestList_SoleElement(t *testing.T) {
	testList := newList[int]()
	node := NewNode(7)

	testList.pushBack(node)

	first, err := testList.First()
	require.NoError(t, err)
	last, err := testList.Last()
	require.NoError(t, err)
	require.True(t, first.Equal(node))
	require.True(t, last.Equal(node))
	requireIntegrity(t, testList)

	head, isSet := testList.head.Node()
	require.True(t, isSet)
	require.True(t, head.Equal(node))
	tail, isSet := testList.tail.Node()
	require.True(t, isSet)
	require.True(t, tail.Equal(node))

	require.True(t, testList.unlink(node).Equal(node))
	require.True(t, testList.IsEmpty())
	require.False(t, testList.head.IsSet())
	require.False(t, testList.tail.IsSet())
	require.Nil(t, node.list)
}

func TestList_Apply(t *testing.T) {
	const elementCount = 100000

	testList := newList[int]()
	for i := 0; i < elementCount; i++ {
		testList.pushBack(NewNode(i))
	}

	visited := 0
	testList.Apply(func(node *Node[int]) {
		require.Equal(t, visited, node.Value())
		node.SetValue(node.Value() * 2)
		visited++
	})
	require.Equal(t, elementCount, visited)

	testList.ApplyReverse(func(node *Node[int]) {
		visited--
		require.Equal(t, visited*2, node.Value())
	})
	require.Equal(t, 0, visited)
}

func TestList_Logger(t *testing.T) {
	output := new(syncBuffer)
	logger := log.NewLogger(log.WithName("list"), log.WithLevel(log.LevelTrace), log.WithOutput(output))

	testList := NewInsertionOrderList[int](WithLogger(logger))
	require.NoError(t, testList.AddBack(NewNode(1)))
	_, err := testList.Remove(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	require.Eventually(t, func() bool {
		return bytes.Contains(output.Bytes(), []byte("linked node")) && bytes.Contains(output.Bytes(), []byte("rejected operation"))
	}, 5*time.Second, 10*time.Millisecond)
}

func TestList_DefaultLogger(t *testing.T) {
	require.Equal(t, log.EmptyLogger, newOptions().Logger)
	require.Equal(t, log.EmptyLogger, newOptions(WithLogger(nil)).Logger)

	testList := NewSortedList[int](WithLogger(nil))
	require.NoError(t, testList.Add(NewNode(1)))
	_, err := testList.RemoveValue(2)
	require.ErrorIs(t, err, ErrNotFound)
}

// requireListElements checks the values of the list in both directions and the structural integrity of the list.
func requireListElements[T int | string | float64](t *testing.T, testList List[T], expectedValues []T) {
	require.EqualValues(t, len(expectedValues), testList.Size())
	require.Equal(t, len(expectedValues) == 0, testList.IsEmpty())
	require.Equal(t, expectedValues, testList.Values())

	index := len(expectedValues)
	testList.ApplyReverse(func(node *Node[T]) {
		index--
		require.Equal(t, expectedValues[index], node.Value())
	})
	require.Equal(t, 0, index)
}

// requireIntegrity checks that the links, the sentinels and the size of the list are consistent.
func requireIntegrity[T int | string | float64](t *testing.T, l *list[T]) {
	require.Equal(t, SentinelRoleHead, l.head.Role())
	require.Equal(t, SentinelRoleTail, l.tail.Role())

	if l.IsEmpty() {
		require.False(t, l.head.IsSet())
		require.False(t, l.tail.IsSet())

		return
	}

	first, err := l.First()
	require.NoError(t, err)
	require.False(t, first.HasPrev())

	var (
		count    int32
		previous *Node[T]
	)
	for current := first; current != nil; current = current.next {
		require.True(t, previous == current.prev)
		require.True(t, l == current.list)

		previous = current
		count++
	}

	last, err := l.Last()
	require.NoError(t, err)
	require.True(t, last.Equal(previous))
	require.False(t, last.HasNext())
	require.Equal(t, l.Size(), count)
}

// syncBuffer is a bytes.Buffer that can be written by the log worker while the test reads it.
type syncBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.buffer.Write(p)
}

func (s *syncBuffer) Bytes() []byte {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return append([]byte(nil), s.buffer.Bytes()...)
}
