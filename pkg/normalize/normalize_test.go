package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint
	Name string
}

func TestData(t *testing.T) {
	out := Data([]row{{3, "c"}, {1, "a"}, {2, "b"}}, func(r row) uint { return r.ID })
	require.Equal(t, []uint{3, 1, 2}, out.AllIDs)
	require.Equal(t, "a", out.ByID[1].Name)
	require.Len(t, out.ByID, 3)
}

func TestDataLastDuplicateWins(t *testing.T) {
	out := Data([]row{{1, "old"}, {1, "new"}}, func(r row) uint { return r.ID })
	require.Equal(t, []uint{1}, out.AllIDs)
	require.Equal(t, "new", out.ByID[1].Name)
}

func TestEmpty(t *testing.T) {
	out := Empty[row]()
	require.NotNil(t, out.ByID)
	require.NotNil(t, out.AllIDs)
	require.Empty(t, out.AllIDs)
}
