package model_test

import (
	"testing"
	"time"

	"linka/shared/constant"
	"linka/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestNewMetadata(t *testing.T) {
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	meta := model.NewMetadata(at, "driver-1")

	assert.Equal(t, at, meta.CreatedAt)
	assert.Equal(t, at, meta.ModifiedAt)
	assert.Equal(t, "driver-1", meta.CreatedBy)
	assert.Equal(t, "driver-1", meta.ModifiedBy)
}

func TestTouched(t *testing.T) {
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	fields := model.Touched(at, "admin-1")

	assert.Equal(t, map[string]any{constant.FieldModifiedAt: at, constant.FieldModifiedBy: "admin-1"}, fields)
}
