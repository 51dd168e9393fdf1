// server/internal/models/marketplace_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListingIsExpired(t *testing.T) {
	past := Listing{ExpiryDate: time.Now().Add(-time.Hour)}
	assert.True(t, past.IsExpired())

	future := Listing{ExpiryDate: time.Now().Add(time.Hour)}
	assert.False(t, future.IsExpired())
}
