package kinds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arlen-voss/typeforge/kinds"
)

func TestPropertyAccessors(t *testing.T) {
	p := kinds.NewProperty("retries", int64(3))
	n, ok := p.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)

	_, ok = p.String()
	assert.False(t, ok)

	list := kinds.NewProperty("tags", []kinds.Property{kinds.NewProperty("", "a"), kinds.NewProperty("", "b")})
	items, ok := list.List()
	assert.True(t, ok)
	assert.Len(t, items, 2)
}
