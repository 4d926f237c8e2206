package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	cases := map[int]string{
		0:         "0",
		999:       "999",
		1000:      "1.0K",
		12500:     "12.5K",
		25400:     "25.4K",
		1_000_000: "1.0M",
		2_450_000: "2.5M",
	}
	for in, want := range cases {
		assert.Equal(t, want, Number(in), "Number(%d)", in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 10))
	assert.Equal(t, 50, Percent(5, 10))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(10, 10))
	assert.Equal(t, 100, Percent(15, 10))
	assert.Equal(t, 0, Percent(3, 0))
}
