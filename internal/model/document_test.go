package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestWithout_DoesNotMutateInput(t *testing.T) {
    in := Document{"_id": "x", "email": "a@b.c", "role": "admin", "name": "Ann"}

    out := Without(in, FieldID, FieldRole)

    assert.Equal(t, Document{"email": "a@b.c", "name": "Ann"}, out)
    assert.Len(t, in, 4)
}

func TestStringField(t *testing.T) {
    d := Document{"email": "a@b.c", "price": 10}
    assert.Equal(t, "a@b.c", StringField(d, FieldEmail))
    assert.Equal(t, "", StringField(d, "price"))
    assert.Equal(t, "", StringField(nil, FieldEmail))
}

func TestUser_IsAdmin(t *testing.T) {
    assert.True(t, User{Role: RoleAdmin}.IsAdmin())
    assert.False(t, User{}.IsAdmin())
    assert.False(t, User{Role: "Admin"}.IsAdmin())
}
