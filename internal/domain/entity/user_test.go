package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/entity"
)

func TestRoleListRoundTrip(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	roles := entity.RoleList{"ROLE_USER", "ROLE_ADMIN"}

	value, err := roles.Value()
	assert.Nil(err)

	var scanned entity.RoleList
	assert.Nil(scanned.Scan(value))
	assert.Equal(roles, scanned)

	var fromString entity.RoleList
	assert.Nil(fromString.Scan(`["ROLE_USER"]`))
	assert.Equal(entity.RoleList{"ROLE_USER"}, fromString)
}

func TestRoleListNilValue(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	var roles entity.RoleList
	value, err := roles.Value()
	assert.Nil(err)
	assert.JSONEq("[]", string(value.([]byte)))

	var scanned entity.RoleList
	assert.Nil(scanned.Scan(nil))
	assert.Empty(scanned)
	assert.NotNil(scanned.Scan(12))
}

func TestRoleListHas(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	roles := entity.RoleList{"ROLE_USER"}

	assert.True(roles.Has("ROLE_USER"))
	assert.False(roles.Has("ROLE_ADMIN"))
	assert.False(entity.RoleList(nil).Has("ROLE_USER"))
}

func TestUserJSONHidesPassword(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	user := entity.User{ID: 1, Email: "member@example.com", Roles: entity.RoleList{"ROLE_USER"}, Password: "hash"}

	encoded, err := json.Marshal(user)
	assert.Nil(err)
	assert.NotContains(string(encoded), "hash")
	assert.NotContains(string(encoded), "password")
}
