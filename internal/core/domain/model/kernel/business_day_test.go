package kernel_test

import (
	"testing"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessDayOf(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)

	t.Run("uses the calendar day of the restaurant timezone", func(t *testing.T) {
		// 18:30 UTC on the 15th is 01:30 on the 16th in Bangkok.
		at := time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

		day, err := kernel.BusinessDayOf(at, bangkok)

		require.NoError(t, err)
		require.NoError(t, day.Validate())
		assert.Equal(t, "2026-10-16", day.Date())
		assert.True(t, day.Contains(at))
		assert.Equal(t, 24*time.Hour, day.End().Sub(day.Start()))
	})

	t.Run("interval is half open", func(t *testing.T) {
		day, err := kernel.BusinessDayOf(time.Date(2026, 10, 16, 12, 0, 0, 0, bangkok), bangkok)
		require.NoError(t, err)

		assert.True(t, day.Contains(day.Start()))
		assert.False(t, day.Contains(day.End()))
		assert.False(t, day.Contains(day.Start().Add(-time.Nanosecond)))
	})

	t.Run("requires a location", func(t *testing.T) {
		_, err := kernel.BusinessDayOf(time.Now(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var day kernel.BusinessDay

		err := day.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		var required *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &required)
		assert.Equal(t, "business day", required.ParamName)
	})
}
