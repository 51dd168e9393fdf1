// server/internal/api/handlers/marketplace_handler_test.go
package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListingBrowseQueryDefaults(t *testing.T) {
	now := time.Now()
	c := newTestContext(t, http.MethodGet, "/marketplace", "")

	query, err := listingBrowseQuery(c, now)
	require.NoError(t, err)

	assert.Equal(t, "available", query["status"])
	assert.Equal(t, bson.M{"$gt": now}, query["expiryDate"])
	assert.NotContains(t, query, "category")
	assert.NotContains(t, query, "$or")
}

func TestListingBrowseQueryFilters(t *testing.T) {
	c := newTestContext(t, http.MethodGet, "/marketplace?category=packaging&condition=good&location=Berlin", "")

	query, err := listingBrowseQuery(c, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "packaging", query["category"])
	assert.Equal(t, "good", query["material.condition"])
	assert.Equal(t, bson.M{"$regex": "Berlin", "$options": "i"}, query["location.address.city"])
}

func TestListingBrowseQuerySearchIncludesTags(t *testing.T) {
	c := newTestContext(t, http.MethodGet, "/marketplace?search=pallet", "")

	query, err := listingBrowseQuery(c, time.Now())
	require.NoError(t, err)

	or, ok := query["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 4)

	fields := make([]string, 0, len(or))
	for _, clause := range or {
		for field := range clause {
			fields = append(fields, field)
		}
	}
	assert.ElementsMatch(t, []string{"title", "description", "material.type", "tags"}, fields)
}

func TestListingBrowseQueryRejectsUnknownCategory(t *testing.T) {
	c := newTestContext(t, http.MethodGet, "/marketplace?category=weapons", "")

	_, err := listingBrowseQuery(c, time.Now())
	assert.Error(t, err)
}
