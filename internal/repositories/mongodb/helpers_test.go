package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Alamin4D/battle-server-website/internal/repositories"
)

func TestNameFilter_QuotesSearchTerm(t *testing.T) {
	filter := nameFilter("c++ (intl)")

	inner, ok := filter["name"].(bson.M)
	require.True(t, ok)
	regex, ok := inner["$regex"].(primitive.Regex)
	require.True(t, ok)

	assert.Equal(t, `c\+\+ \(intl\)`, regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestNameFilter_EmptySearchMatchesEverything(t *testing.T) {
	regex := nameFilter("")["name"].(bson.M)["$regex"].(primitive.Regex)
	assert.Equal(t, "", regex.Pattern)
}

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := parseObjectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = parseObjectID("not-an-id")
	assert.ErrorIs(t, err, repositories.ErrInvalidID)
}

func TestToUpdateResult(t *testing.T) {
	oid := primitive.NewObjectID()

	res := toUpdateResult(&mongo.UpdateResult{MatchedCount: 0, UpsertedCount: 1, UpsertedID: oid})
	require.NotNil(t, res.UpsertedID)
	assert.Equal(t, oid.Hex(), *res.UpsertedID)
	assert.True(t, res.Acknowledged)

	res = toUpdateResult(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1})
	assert.Nil(t, res.UpsertedID)
	assert.EqualValues(t, 1, res.ModifiedCount)
}
