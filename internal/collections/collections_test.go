package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-go/modules/rate-limiter/internal/collections"
)

func TestContainsString(t *testing.T) {
	testCases := []struct {
		name     string
		haystack []string
		needle   string
		expected bool
	}{
		{"failure empty haystack", []string{}, "weekly", false},
		{"failure empty needle", []string{"daily", "weekly"}, "", false},
		{"failure needle not in haystack", []string{"daily", "weekly"}, "monthly", false},
		{"success needle in haystack", []string{"daily", "weekly", "monthly"}, "monthly", true},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, collections.Contains(tc.needle, tc.haystack), tc.name)
	}
}

func TestContainsUint64(t *testing.T) {
	testCases := []struct {
		name     string
		haystack []uint64
		needle   uint64
		expected bool
	}{
		{"failure empty haystack", []uint64{}, 86400, false},
		{"failure needle not in haystack", []uint64{3600, 86400}, 604800, false},
		{"success needle in haystack", []uint64{3600, 86400, 604800}, 604800, true},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, collections.Contains(tc.needle, tc.haystack), tc.name)
	}
}
