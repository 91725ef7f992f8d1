package utils_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/provlabs/basket/utils"
)

func TestSliceHelpers(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6}
	even := func(v int) bool { return v%2 == 0 }

	require.Equal(t, []int{2, 4, 6}, slices.Collect(utils.Filter(xs, even)))
	require.Equal(t, []int{2, 4, 6, 8, 10, 12}, slices.Collect(utils.Map(xs, func(v int) int { return v * 2 })))
	require.Equal(t, 3, utils.Count(xs, even))
	require.False(t, utils.All(xs, even))
	require.True(t, utils.All([]int{}, even))
	require.True(t, utils.All(xs, func(v int) bool { return v > 0 }))
}

func TestAddressFromSeed(t *testing.T) {
	require.Equal(t, utils.AddressFromSeed("usdc"), utils.AddressFromSeed("usdc"))
	require.NotEqual(t, utils.AddressFromSeed("usdc"), utils.AddressFromSeed("dai"))
}
