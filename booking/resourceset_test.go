package booking_test

import (
	"testing"

	bk "github.com/courtside/facility-booking-backend/booking"
	"github.com/stretchr/testify/require"
)

func mustResources(t *testing.T, tableTennis, badminton bool) bk.ResourceSet {
	t.Helper()
	set, err := bk.NewResourceSet(tableTennis, badminton)
	require.Nil(t, err)

	return set
}

func TestNewResourceSet(t *testing.T) {
	t.Run("at least one resource required", func(t *testing.T) {
		_, err := bk.NewResourceSet(false, false)

		require.ErrorIs(t, err, bk.ErrNoResourceSelected)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var set bk.ResourceSet

		require.ErrorIs(t, set.Validate(), bk.ErrNoResourceSelected)
	})

	t.Run("single resource", func(t *testing.T) {
		set, err := bk.NewResourceSet(true, false)

		require.Nil(t, err)
		require.True(t, set.TableTennis())
		require.False(t, set.Badminton())
	})

	t.Run("both resources", func(t *testing.T) {
		set, err := bk.NewResourceSet(true, true)

		require.Nil(t, err)
		require.True(t, set.TableTennis())
		require.True(t, set.Badminton())
	})
}

func TestResourceSetIntersects(t *testing.T) {
	tableTennis := mustResources(t, true, false)
	badminton := mustResources(t, false, true)
	both := mustResources(t, true, true)

	require.False(t, tableTennis.Intersects(badminton))
	require.False(t, badminton.Intersects(tableTennis))
	require.True(t, tableTennis.Intersects(both))
	require.True(t, both.Intersects(badminton))
	require.True(t, both.Intersects(both))
}
