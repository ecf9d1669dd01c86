package simplelist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwningInsertionOrderList(t *testing.T) {
	testList := NewOwningInsertionOrderList([]int{1, 2, 3})
	requireListElements[int](t, testList, []int{1, 2, 3})
	requireIntegrity(t, &testList.list)

	testList.Apply(func(node *Node[int]) {
		require.True(t, testList.Owns(node))
	})

	borrowed := NewNode(4)
	require.NoError(t, testList.AddBack(borrowed))
	require.False(t, testList.Owns(borrowed))
	require.False(t, testList.Owns(nil))

	removed, err := testList.RemoveFront()
	require.NoError(t, err)
	require.Equal(t, 1, removed.Value())
	require.False(t, testList.Owns(removed))
	requireListElements[int](t, testList, []int{2, 3, 4})

	require.Equal(t, 2, testList.Release())
	require.True(t, testList.IsEmpty())
	requireIntegrity(t, &testList.list)

	require.Equal(t, 1, removed.Value())
	require.Equal(t, 4, borrowed.Value())
	require.False(t, borrowed.HasPrev())
	require.False(t, borrowed.HasNext())

	require.Equal(t, 0, testList.Release())

	// released lists can be reused as a borrowing list
	require.NoError(t, testList.AddBack(borrowed))
	requireListElements[int](t, testList, []int{4})
	require.Equal(t, 0, testList.Release())
	require.Equal(t, 4, borrowed.Value())
}

func TestOwningInsertionOrderList_OwnedNodesStayWithTheirList(t *testing.T) {
	list1 := NewOwningInsertionOrderList([]string{"a", "b"})
	list2 := NewOwningInsertionOrderList([]string{"c"})

	first, err := list1.First()
	require.NoError(t, err)
	require.True(t, list1.Owns(first))
	require.False(t, list2.Owns(first))

	require.ErrorIs(t, list2.AddFront(first), ErrNodeInUse)
	require.Contains(t, list1.String(), "OwningInsertionOrderList")
}

func TestOwningInsertionOrderList_Empty(t *testing.T) {
	testList := NewOwningInsertionOrderList[int](nil)

	requireListElements[int](t, testList, []int{})
	require.Equal(t, 0, testList.Release())
}

func TestOwningInsertionOrderList_ZeroValue(t *testing.T) {
	var testList OwningInsertionOrderList[int]
	require.Equal(t, 0, testList.Release())

	borrowed := NewNode(1)
	require.NoError(t, testList.AddBack(borrowed))
	require.False(t, testList.Owns(borrowed))
	require.Equal(t, 0, testList.Release())
	require.True(t, testList.IsEmpty())
}
