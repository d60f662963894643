package order_test

import (
	"fmt"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberFromSequence(t *testing.T) {
	t.Run("formats with prefix and zero padding", func(t *testing.T) {
		n, err := order.NumberFromSequence(1)

		require.NoError(t, err)
		assert.Equal(t, "ORD000001", n.String())
	})

	t.Run("pads mid-range values", func(t *testing.T) {
		n, err := order.NumberFromSequence(42)

		require.NoError(t, err)
		assert.Equal(t, "ORD000042", n.String())
	})

	t.Run("widens beyond the padding instead of wrapping", func(t *testing.T) {
		n, err := order.NumberFromSequence(1234567)

		require.NoError(t, err)
		assert.Equal(t, "ORD1234567", n.String())
	})

	t.Run("rejects zero and negative sequences", func(t *testing.T) {
		_, err := order.NumberFromSequence(0)
		require.Error(t, err)

		_, err = order.NumberFromSequence(-5)
		require.Error(t, err)
	})

	t.Run("sequential values are strictly increasing and unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		var prev order.Number

		for seq := int64(1); seq <= 20; seq++ {
			n, err := order.NumberFromSequence(seq)
			require.NoError(t, err)

			_, duplicate := seen[n.String()]
			assert.False(t, duplicate, n.String())
			seen[n.String()] = struct{}{}

			if prev != "" {
				assert.Greater(t, n.String(), prev.String())
			}
			prev = n
		}
	})
}

func TestNumber_Validate(t *testing.T) {
	testCases := []struct {
		value string
		valid bool
	}{
		{"ORD000001", true},
		{"ORD999999", true},
		{"ORD1000000", true},
		{"", false},
		{"000001", false},
		{"ORD1", false},
		{"ORDABCDEF", false},
		{"XYZ000001", false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.value), func(t *testing.T) {
			err := order.Number(tc.value).Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}

	t.Run("empty number reports required error", func(t *testing.T) {
		err := order.Number("").Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNumber_Sequence(t *testing.T) {
	t.Run("round trips through formatting", func(t *testing.T) {
		n, err := order.NumberFromSequence(137)
		require.NoError(t, err)

		seq, err := n.Sequence()

		require.NoError(t, err)
		assert.Equal(t, int64(137), seq)
	})

	t.Run("fails on invalid number", func(t *testing.T) {
		_, err := order.Number("bogus").Sequence()

		require.Error(t, err)
	})
}
