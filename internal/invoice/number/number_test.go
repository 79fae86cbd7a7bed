package number

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/servostack/garagedesk/internal/invoice/domain"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "INV--1", Format(domain.ClassGST, 0))
	assert.Equal(t, "INV--6", Format(domain.ClassGST, 5))
	assert.Equal(t, "NIV--3", Format(domain.ClassNonGST, 2))
}
