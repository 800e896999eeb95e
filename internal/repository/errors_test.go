package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := ParseID(" " + want.Hex() + " ")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	for _, bad := range []string{"", "not-a-valid-id", "123", want.Hex() + "00", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, bad)
	}
}
