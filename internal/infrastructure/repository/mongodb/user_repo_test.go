package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildRoleFilter(t *testing.T) {
	t.Run("empty search matches the role alone", func(t *testing.T) {
		filter := buildRoleFilter("role-1", "")
		assert.Equal(t, "role-1", filter["role"])
		_, hasOr := filter["$or"]
		assert.False(t, hasOr)
	})

	t.Run("search spans full name and email", func(t *testing.T) {
		filter := buildRoleFilter("role-1", "alice")

		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, 2)

		name := or[0].(bson.M)["full_name"].(primitive.Regex)
		assert.Equal(t, "alice", name.Pattern)
		assert.Equal(t, "i", name.Options)

		email := or[1].(bson.M)["email"].(primitive.Regex)
		assert.Equal(t, "alice", email.Pattern)
	})

	t.Run("regex metacharacters are taken literally", func(t *testing.T) {
		filter := buildRoleFilter("role-1", "a(b*")

		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		name := or[0].(bson.M)["full_name"].(primitive.Regex)
		assert.Equal(t, `a\(b\*`, name.Pattern)
	})
}
