package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

func TestExtractTimeFromText(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	ref := time.Date(2025, 3, 10, 15, 4, 0, 0, jakarta)

	t.Run("iso date", func(t *testing.T) {
		got, ok := domain.ExtractTimeFromText("mau booking excavator tanggal 2025-04-01", ref, jakarta)
		require.True(t, ok)
		assert.Equal(t, 2025, got.Year())
		assert.Equal(t, time.April, got.Month())
		assert.Equal(t, 1, got.Day())
	})

	t.Run("slash date is day first", func(t *testing.T) {
		got, ok := domain.ExtractTimeFromText("sewa crane 05/04/2025 ya", ref, jakarta)
		require.True(t, ok)
		assert.Equal(t, time.April, got.Month())
		assert.Equal(t, 5, got.Day())
	})

	t.Run("besok resolves against reference", func(t *testing.T) {
		got, ok := domain.ExtractTimeFromText("booking bulldozer besok", ref, jakarta)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, jakarta), got)
	})

	t.Run("lusa is two days out", func(t *testing.T) {
		got, ok := domain.ExtractTimeFromText("kalau lusa bisa?", ref, jakarta)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, jakarta), got)
	})

	t.Run("hari ini keeps the date, drops the time", func(t *testing.T) {
		got, ok := domain.ExtractTimeFromText("mau sewa hari ini", ref, jakarta)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, jakarta), got)
	})

	t.Run("no date phrase", func(t *testing.T) {
		_, ok := domain.ExtractTimeFromText("mau booking excavator", ref, jakarta)
		assert.False(t, ok)
	})
}
