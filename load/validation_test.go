package load

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() NormalizedInput {
	return normalizer{}.normalize(RoomInput{}, ConditionsInput{}, ProductInput{})
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(defaults()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*NormalizedInput)
		fields []string
	}{
		{name: "zero length", modify: func(in *NormalizedInput) { in.Length = 0 }, fields: []string{"length"}},
		{name: "negative height", modify: func(in *NormalizedInput) { in.Height = -3 }, fields: []string{"height"}},
		{name: "internal above external", modify: func(in *NormalizedInput) { in.InternalTemp = 40 }, fields: []string{"internalTemp"}},
		{name: "equal temperatures", modify: func(in *NormalizedInput) { in.InternalTemp = in.ExternalTemp }, fields: []string{"internalTemp"}},
		{name: "zero pull-down", modify: func(in *NormalizedInput) { in.PullDownTime = 0 }, fields: []string{"pullDownTime"}},
		{name: "operating hours above a day", modify: func(in *NormalizedInput) { in.OperatingHours = 25 }, fields: []string{"operatingHours"}},
		{name: "negative working hours", modify: func(in *NormalizedInput) { in.WorkingHours = -1 }, fields: []string{"workingHours"}},
		{name: "product warms up", modify: func(in *NormalizedInput) { in.OutgoingTemp = 30 }, fields: []string{"incomingTemp"}},
		{name: "negative people", modify: func(in *NormalizedInput) { in.NumberOfPeople = -2 }, fields: []string{"numberOfPeople"}},
		{
			name: "several at once",
			modify: func(in *NormalizedInput) {
				in.Width = 0
				in.DoorOpenings = -1
				in.EquipmentLoad = -5
			},
			fields: []string{"width", "doorOpenings", "equipmentLoad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := defaults()
			tt.modify(&in)

			err := Validate(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))

			var fields []string
			for _, v := range Violations(err) {
				fields = append(fields, v.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidate_ZeroIsAllowedWhereMeaningful(t *testing.T) {
	in := defaults()
	in.DoorOpenings = 0
	in.EquipmentLoad = 0
	in.NumberOfPeople = 0
	in.LightingWattage = 0
	in.DailyLoad = 0
	in.OperatingHours = 0

	assert.NoError(t, Validate(in))
}

func TestInvalidConfigurationError_Error(t *testing.T) {
	err := &InvalidConfigurationError{Violations: []Violation{
		{Field: "length", Message: "must be greater than 0, got 0"},
		{Field: "pullDownTime", Message: "must be greater than 0, got -1"},
	}}

	assert.Equal(t, "invalid configuration: length: must be greater than 0, got 0; pullDownTime: must be greater than 0, got -1", err.Error())
	assert.Nil(t, Violations(errors.New("other")))
}
