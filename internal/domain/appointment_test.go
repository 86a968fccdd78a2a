package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusPending, true},
		{StatusConfirmed, StatusAttended, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},

		// Завершить можно только подтвержденную запись
		{StatusPending, StatusAttended, false},

		{StatusAttended, StatusPending, false},
		{StatusAttended, StatusConfirmed, false},
		{StatusAttended, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusAttended, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusPending, AppointmentStatus("unknown"), false},
	}

	for _, tt := range tests {
		appt := &Appointment{Status: tt.from}
		assert.Equal(t, tt.want, appt.CanTransitionTo(tt.to),
			"transition %s -> %s", tt.from, tt.to)
	}
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Appointment{Status: StatusAttended}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}

func TestAppointment_IsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusAttended}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCancelled}).IsTerminal())
}

func TestAppointment_CanBeUpdated(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeUpdated())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeUpdated())
	assert.False(t, (&Appointment{Status: StatusAttended}).CanBeUpdated())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeUpdated())
}

func TestAppointment_OccupantLabel(t *testing.T) {
	appt := &Appointment{
		FirstName:     "Laura",
		LastName:      "Gómez",
		ProcedureName: "Limpieza facial",
	}

	assert.Equal(t, "Laura Gómez (Limpieza facial)", appt.OccupantLabel())
}
