package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityStable(t *testing.T) {
	a := Identity("Acme", "Staff ML Engineer", "https://acme.com/jobs/1")
	b := Identity("Acme", "Staff ML Engineer", "https://acme.com/jobs/1")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestIdentityDistinguishesURL(t *testing.T) {
	a := Identity("Acme", "Staff ML Engineer", "https://acme.com/jobs/1")
	b := Identity("Acme", "Staff ML Engineer", "https://acme.com/jobs/2")
	assert.NotEqual(t, a, b, "same title at a different URL is a different posting")
}

func TestIdentityFieldBoundaries(t *testing.T) {
	// Length prefixing means shifting bytes between fields cannot collide.
	a := Identity("ab", "c", "u")
	b := Identity("a", "bc", "u")
	assert.NotEqual(t, a, b)
}
