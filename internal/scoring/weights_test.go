package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MikeSquared-Agency/Shortlist/internal/store"
)

func TestShare(t *testing.T) {
	assert.Equal(t, 0.3, share(30, 100))
	assert.Equal(t, 0.0, share(0, 0))
	assert.Equal(t, 0.0, share(50, 0))
}

func TestSumWeightsTreatsUnsetAsZero(t *testing.T) {
	cats := []store.Category{
		{ID: 1, Name: "a", ParentID: store.IntPtr(9), Weight: store.Float64Ptr(30)},
		{ID: 2, Name: "b", ParentID: store.IntPtr(9)},
		{ID: 3, Name: "c", ParentID: store.IntPtr(9), Weight: store.Float64Ptr(70)},
	}
	assert.Equal(t, 100.0, sumWeights(cats))
	assert.Equal(t, 0.0, sumWeights(nil))
}
