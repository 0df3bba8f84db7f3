package open

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Akash7367/chatlens/internal/parse"
)

func TestHeaderLine(t *testing.T) {
	data := "26/01/23, 15:30 - Alice: first\n" +
		"26/01/23, 15:31 - Bob: spans\ntwo lines\n" +
		"26/01/23, 15:32 - Alice: third\n"
	v := parse.VariantByName("24h")

	assert.Equal(t, 1, headerLine(data, v, 0))
	assert.Equal(t, 2, headerLine(data, v, 1))
	assert.Equal(t, 4, headerLine(data, v, 2), "multi-line body does not shift later headers")
	assert.Equal(t, 1, headerLine(data, v, 99), "out of range falls back to the top")
}
