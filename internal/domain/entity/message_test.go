package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFor(t *testing.T) {
	assert.Equal(t, MessageText, KindFor("hola", ""))
	assert.Equal(t, MessageImage, KindFor("", "https://img"))
	assert.Equal(t, MessageTextWithImage, KindFor("hola", "https://img"))
	assert.Equal(t, MessageText, KindFor("", ""))
}
