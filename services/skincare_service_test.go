package services

import (
	"testing"

	"github.com/anilkaliya/LifeOs/models"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestApplyPatch_OnlyPresentFieldsChange(t *testing.T) {
	row := models.SkinCareLog{
		UserID:        1,
		Date:          "2024-01-01",
		Detan:         true,
		Oiling:        true,
		CustomRoutine: "niacinamide",
	}

	applyPatch(&row, SkinCarePatch{
		Date:      "2024-01-01",
		Sunscreen: boolPtr(true),
	})

	// Untouched fields keep their stored values; absent is not false.
	assert.True(t, row.Detan)
	assert.True(t, row.Oiling)
	assert.True(t, row.Sunscreen)
	assert.Equal(t, "niacinamide", row.CustomRoutine)
}

func TestApplyPatch_ExplicitFalseClearsFlag(t *testing.T) {
	row := models.SkinCareLog{UserID: 1, Date: "2024-01-01", Detan: true}

	applyPatch(&row, SkinCarePatch{Date: "2024-01-01", Detan: boolPtr(false)})

	assert.False(t, row.Detan)
}

func TestApplyPatch_FullPayloadIsIdempotent(t *testing.T) {
	patch := SkinCarePatch{
		Date:          "2024-01-01",
		Detan:         boolPtr(true),
		Oiling:        boolPtr(false),
		Sunscreen:     boolPtr(true),
		CustomRoutine: strPtr("spf 50"),
	}

	row := models.SkinCareLog{UserID: 1, Date: "2024-01-01"}
	applyPatch(&row, patch)
	once := row
	applyPatch(&row, patch)

	assert.Equal(t, once, row)
}
