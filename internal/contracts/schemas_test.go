package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "RoomAssessmentEvent/1.0.0", generateKeyFromPath("events/room-assessment/v1.json"))
	assert.Equal(t, "PropertyEstimateEvent/1.0.0", generateKeyFromPath("events/property-estimate/v1.json"))
	assert.Equal(t, "", generateKeyFromPath("events/malformed.json"))
}

func TestEmbeddedSchemasAreRegistered(t *testing.T) {
	assert.Contains(t, compiledSchemas, "RoomAssessmentEvent/1.0.0")
	assert.Contains(t, compiledSchemas, "PropertyEstimateEvent/1.0.0")
}

func TestValidateRoomAssessmentEvent(t *testing.T) {
	valid := []byte(`{
		"property_id": "prop-1",
		"rooms": {
			"kitchen": {
				"room_type": "kitchen",
				"surfaces": {"floor_material": "ceramic_tile", "floor_condition": 2},
				"fixtures": {"cabinet_condition": null}
			}
		},
		"context": {"era": "1951_1980", "region": "porto"},
		"preferences": {"diy": false, "finish_level": "standard"}
	}`)
	assert.NoError(t, ValidateEvent("RoomAssessmentEvent", "1.0.0", valid))

	t.Run("missing property_id", func(t *testing.T) {
		body := []byte(`{"rooms": {}}`)
		assert.Error(t, ValidateEvent("RoomAssessmentEvent", "1.0.0", body))
	})

	t.Run("condition score out of range", func(t *testing.T) {
		body := []byte(`{
			"property_id": "prop-1",
			"rooms": {"bedroom_1": {"room_type": "bedroom", "surfaces": {"floor_condition": 7}}}
		}`)
		assert.Error(t, ValidateEvent("RoomAssessmentEvent", "1.0.0", body))
	})

	t.Run("unknown room type", func(t *testing.T) {
		body := []byte(`{
			"property_id": "prop-1",
			"rooms": {"garage": {"room_type": "garage"}}
		}`)
		assert.Error(t, ValidateEvent("RoomAssessmentEvent", "1.0.0", body))
	})

	t.Run("not json", func(t *testing.T) {
		assert.Error(t, ValidateEvent("RoomAssessmentEvent", "1.0.0", []byte("not-json")))
	})

	t.Run("unregistered schema", func(t *testing.T) {
		err := ValidateEvent("NoSuchEvent", "9.9.9", []byte(`{}`))
		assert.ErrorContains(t, err, "not found")
	})
}
