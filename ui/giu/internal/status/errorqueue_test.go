package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorQueue(t *testing.T) {
	a := assert.New(t)

	sut := &ErrorQueue{}
	a.False(sut.IsBlocking())

	sut.Push("first")
	sut.Push("second")
	a.True(sut.IsBlocking())

	t.Run("First message is shown", func(t *testing.T) {
		message, ok := sut.Next()
		a.True(ok)
		a.Equal("first", message)
	})
	t.Run("Second waits until the first is dismissed", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			_, ok := sut.Next()
			a.False(ok)
		}
		a.True(sut.IsBlocking())

		sut.Dismiss()
		message, ok := sut.Next()
		a.True(ok)
		a.Equal("second", message)
	})
	t.Run("Empty after the last is dismissed", func(t *testing.T) {
		sut.Dismiss()
		_, ok := sut.Next()
		a.False(ok)
		a.False(sut.IsBlocking())
	})
}
