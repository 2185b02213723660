package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCollection_Link(t *testing.T) {
	// Setup
	c := NewItemCollection()
	require.NoError(t, c.Add(&WorkItem{Key: "PROJ-1"}))
	require.NoError(t, c.Add(&WorkItem{Key: "PROJ-2", ParentKey: "PROJ-1"}))
	require.NoError(t, c.Add(&WorkItem{Key: "PROJ-3", ParentKey: "OTHER-7"}))
	require.NoError(t, c.Add(&WorkItem{Key: "PROJ-4", ParentKey: "PROJ-4"}))

	// Execute
	c.Link()

	// Assert
	child, err := c.Get("PROJ-2")
	require.NoError(t, err)
	require.NotNil(t, child.Parent)
	assert.Equal(t, "PROJ-1", child.Parent.Key)

	orphan, err := c.Get("PROJ-3")
	require.NoError(t, err)
	assert.Nil(t, orphan.Parent)
	assert.Empty(t, orphan.ParentKey)

	self, err := c.Get("PROJ-4")
	require.NoError(t, err)
	assert.Nil(t, self.Parent)
	assert.Empty(t, self.ParentKey)

	children := c.Children("PROJ-1")
	require.Len(t, children, 1)
	assert.Equal(t, "PROJ-2", children[0].Key)
}

func TestItemCollection_KeyOrder(t *testing.T) {
	c := NewItemCollection()
	for _, key := range []string{"PROJ-10", "ABC-2", "PROJ-9", "PROJ-100", "misc"} {
		require.NoError(t, c.Add(&WorkItem{Key: key}))
	}

	var keys []string
	for item := range c.All() {
		keys = append(keys, item.Key)
	}
	assert.Equal(t, []string{"ABC-2", "PROJ-9", "PROJ-10", "PROJ-100", "misc"}, keys)
	assert.Equal(t, 5, c.Len())
}

func TestItemCollection_Errors(t *testing.T) {
	c := NewItemCollection()
	require.NoError(t, c.Add(&WorkItem{Key: "PROJ-1"}))

	err := c.Add(&WorkItem{Key: "PROJ-1"})
	require.ErrorIs(t, err, ErrDuplicateItem)

	_, err = c.Get("PROJ-2")
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestCompareKeys(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"PROJ-9", "PROJ-10", -1},
		{"PROJ-10", "PROJ-9", 1},
		{"PROJ-1", "PROJ-1", 0},
		{"ABC-99", "PROJ-1", -1},
		{"MY-PROJ-3", "MY-PROJ-20", -1},
		{"abc", "abd", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareKeys(tt.a, tt.b))
		})
	}
}
