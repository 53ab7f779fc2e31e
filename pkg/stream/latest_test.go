package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestKeepsNewestValue(t *testing.T) {
	l := NewLatest[int]()
	l.Publish(1)
	l.Publish(2)
	l.Publish(3)

	assert.Equal(t, 3, <-l.C())
	select {
	case v := <-l.C():
		t.Fatalf("unexpected value %d", v)
	default:
	}
}

func TestLatestClose(t *testing.T) {
	l := NewLatest[string]()
	l.Publish("last")
	l.Close()
	l.Close()
	l.Publish("dropped")

	v, ok := <-l.C()
	assert.True(t, ok)
	assert.Equal(t, "last", v)

	_, ok = <-l.C()
	assert.False(t, ok)
}
