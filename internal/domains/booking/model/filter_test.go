package model_test

import (
	"testing"

	"linka/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestFilterByIDAndStatus(t *testing.T) {
	filter := model.FilterByIDAndStatus("b-1", model.StatusPending)

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id AND bookings.status = :current_status)", where)
	assert.Equal(t, "b-1", args["id"])
	assert.Equal(t, model.StatusPending, args["current_status"])
	assert.NotContains(t, args, model.FieldStatus)
}

func TestFilterByTargetAndStatus(t *testing.T) {
	filter := model.FilterByTargetAndStatus(model.FieldRideID, "r-1", model.OpenStatuses()...)

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.ride_id = :ride_id AND bookings.status IN (:current_status_0, :current_status_1))", where)
	assert.Equal(t, "r-1", args["ride_id"])
	assert.Equal(t, model.StatusPending, args["current_status_0"])
	assert.Equal(t, model.StatusConfirmed, args["current_status_1"])
}
