package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagRegistry_RegisterAndGet(t *testing.T) {
	r := NewFlagRegistry()
	r.Register(&StringFlag{Name: "cluster-name"})
	r.Register(&IntFlag{Name: "max-results"})

	require.Equal(t, 2, r.Len())
	assert.IsType(t, &StringFlag{}, r.Get("cluster-name"))
	assert.IsType(t, &IntFlag{}, r.Get("max-results"))
	assert.Nil(t, r.Get("missing"))
}

func TestFlagRegistry_ReplaceKeepsOrder(t *testing.T) {
	r := NewFlagRegistry()
	r.Register(&StringFlag{Name: "a", Description: "first"})
	r.Register(&StringFlag{Name: "b"})
	r.Register(&StringFlag{Name: "a", Description: "second"})

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].GetName())
	assert.Equal(t, "second", all[0].GetDescription())
	assert.Equal(t, "b", all[1].GetName())
}

func TestFlagRegistry_AllReturnsCopy(t *testing.T) {
	r := NewFlagRegistry()
	r.Register(&BoolFlag{Name: "force"})

	all := r.All()
	all[0] = &BoolFlag{Name: "other"}

	assert.Equal(t, "force", r.All()[0].GetName())
}
