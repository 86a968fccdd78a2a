package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical 24h", label: "09:00", want: "09:00"},
		{name: "morning label", label: "9:00 AM", want: "09:00"},
		{name: "afternoon label", label: "2:30 PM", want: "14:30"},
		{name: "noon", label: "12:00 PM", want: "12:00"},
		{name: "midnight", label: "12:00 AM", want: "00:00"},
		{name: "lowercase meridiem", label: "10:00 am", want: "10:00"},
		{name: "padded label", label: " 11:00 AM ", want: "11:00"},
		{name: "24h afternoon", label: "16:00", want: "16:00"},
		{name: "garbage", label: "mediodia", wantErr: true},
		{name: "empty", label: "", wantErr: true},
		{name: "out of range hour", label: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromLabel(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringFromLabel_EquivalentForms(t *testing.T) {
	canonical, err := NewTimeStringFromLabel("09:00")
	require.NoError(t, err)

	labeled, err := NewTimeStringFromLabel("9:00 AM")
	require.NoError(t, err)

	assert.True(t, canonical.Equal(labeled), "display label and canonical form must collapse to the same slot")
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 14, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)
}

func TestTimeString_Comparisons(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("15:30")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.True(t, early.Equal("09:00"))
	assert.False(t, early.Equal(late))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:45")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("08:00").Validate())
	assert.Error(t, TimeString("8am").Validate())
	assert.Error(t, TimeString("").Validate())
}
