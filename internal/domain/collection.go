package domain

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ItemCollection indexes work items by key.
// Parent references are resolved once, by Link, after all items are added.
type ItemCollection struct {
	items map[string]*WorkItem
}

// NewItemCollection creates an empty collection.
func NewItemCollection() *ItemCollection {
	return &ItemCollection{items: make(map[string]*WorkItem)}
}

// Add inserts an item. Keys must be unique.
func (c *ItemCollection) Add(item *WorkItem) error {
	if _, ok := c.items[item.Key]; ok {
		return fmt.Errorf("%s: %w", item.Key, ErrDuplicateItem)
	}
	c.items[item.Key] = item
	return nil
}

// Get returns the item with the given key.
func (c *ItemCollection) Get(key string) (*WorkItem, error) {
	item, ok := c.items[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrItemNotFound)
	}
	return item, nil
}

// Len returns the number of items.
func (c *ItemCollection) Len() int {
	return len(c.items)
}

// Link resolves every ParentKey to its item. Keys that do not resolve are
// cleared so callers only ever see a consistent pair.
func (c *ItemCollection) Link() {
	for _, item := range c.items {
		item.Parent = nil
		if item.ParentKey == "" {
			continue
		}
		parent, ok := c.items[item.ParentKey]
		if !ok || parent == item {
			item.ParentKey = ""
			continue
		}
		item.Parent = parent
	}
}

// All yields the items in key order.
func (c *ItemCollection) All() iter.Seq[*WorkItem] {
	return func(yield func(*WorkItem) bool) {
		for _, key := range c.Keys() {
			if !yield(c.items[key]) {
				return
			}
		}
	}
}

// Keys returns the item keys in order.
func (c *ItemCollection) Keys() []string {
	return slices.SortedFunc(maps.Keys(c.items), CompareKeys)
}

// Children returns the direct children of key in key order.
func (c *ItemCollection) Children(key string) []*WorkItem {
	var out []*WorkItem
	for item := range c.All() {
		if item.Parent != nil && item.Parent.Key == key {
			out = append(out, item)
		}
	}
	return out
}
