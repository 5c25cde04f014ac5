package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, "Rp500", Price(500))
	assert.Equal(t, "Rp25.000", Price(25000))
	assert.Equal(t, "Rp1.250.000", Price(1250000))
	assert.Equal(t, "Rp0", Price(0))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "2 Januari 2026", Date(time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "17 Agustus 2025", Date(time.Date(2025, 8, 17, 12, 30, 0, 0, time.Local)))
}

func TestDateSafe(t *testing.T) {
	assert.Equal(t, "Tidak diatur", DateSafe(nil))
	d := time.Date(2026, 12, 25, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "25 Desember 2026", DateSafe(&d))
}
