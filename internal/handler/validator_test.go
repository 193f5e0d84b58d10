package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	v := GetValidator()

	t.Run("valid create request", func(t *testing.T) {
		req := CreateLootboxRequest{Name: "Starter Case", Description: "Entry level case"}
		assert.NoError(t, v.ValidateStruct(req))
	})

	t.Run("required fields", func(t *testing.T) {
		err := v.ValidateStruct(CreateLootboxRequest{})
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Equal(t, "This field is required", errs["name"])
		assert.Equal(t, "This field is required", errs["description"])
	})

	t.Run("name length is bounded", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'x'
		}

		err := v.ValidateStruct(CreateLootboxRequest{Name: string(long), Description: "ok"})
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Contains(t, errs["name"], "at most 100")
	})

	t.Run("add skins requires at least one name", func(t *testing.T) {
		err := v.ValidateStruct(AddSkinsRequest{SkinNames: []string{}})
		require.Error(t, err)

		err = v.ValidateStruct(AddSkinsRequest{SkinNames: []string{""}})
		require.Error(t, err)

		err = v.ValidateStruct(AddSkinsRequest{SkinNames: []string{"AK-47 Redline"}})
		assert.NoError(t, err)
	})

	t.Run("probabilities map must be non-empty", func(t *testing.T) {
		err := v.ValidateStruct(SetProbabilitiesRequest{Probabilities: map[string]float64{}})
		require.Error(t, err)

		err = v.ValidateStruct(SetProbabilitiesRequest{Probabilities: map[string]float64{"AK-47 Redline": 1.0}})
		assert.NoError(t, err)
	})
}

type orderedQuery struct {
	Order string `validate:"order"`
}

func TestValidateOrderTag(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(orderedQuery{Order: "asc"}))
	assert.NoError(t, v.ValidateStruct(orderedQuery{Order: "desc"}))
	assert.NoError(t, v.ValidateStruct(orderedQuery{Order: ""}))
	assert.Error(t, v.ValidateStruct(orderedQuery{Order: "upward"}))
}

func TestFormatValidationErrorNonValidation(t *testing.T) {
	errs := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", errs["error"])
}
