package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRoom() *Room {
	return &Room{
		RoomNumber: "101",
		Type:       "General",
	}
}

func TestRoomValidate_Valid(t *testing.T) {
	assert.Nil(t, validRoom().Validate())
}

func TestRoomValidate_MissingNumber(t *testing.T) {
	r := validRoom()
	r.RoomNumber = ""

	verr := r.Validate()
	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "Room number is required")
}

func TestRoomValidate_MissingType(t *testing.T) {
	r := validRoom()
	r.Type = ""

	verr := r.Validate()
	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "Room type must be selected")
}

func TestRoomValidate_InvalidType(t *testing.T) {
	r := validRoom()
	r.Type = "Suite"

	verr := r.Validate()
	assert.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "Room type must be General, Private, ICU, or Emergency")
}

func TestRoomValidate_AllTypes(t *testing.T) {
	for _, roomType := range []string{"General", "Private", "ICU", "Emergency"} {
		r := validRoom()
		r.Type = roomType
		assert.Nil(t, r.Validate(), "type %s should be valid", roomType)
	}
}
