package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_AllMissing(t *testing.T) {
	got := normalizer{}.normalize(RoomInput{}, ConditionsInput{}, ProductInput{})

	assert.Equal(t, NormalizedInput{
		Length:              DefaultLength,
		Width:               DefaultWidth,
		Height:              DefaultHeight,
		DoorWidth:           DefaultDoorWidth,
		DoorHeight:          DefaultDoorHeight,
		DoorOpenings:        DefaultDoorOpenings,
		InsulationType:      DefaultInsulationType,
		InsulationThickness: DefaultInsulationThickness,
		ExternalTemp:        DefaultExternalTemp,
		InternalTemp:        DefaultInternalTemp,
		OperatingHours:      DefaultOperatingHours,
		PullDownTime:        DefaultPullDownTime,
		ProductType:         DefaultProductType,
		DailyLoad:           DefaultDailyLoad,
		IncomingTemp:        DefaultIncomingTemp,
		OutgoingTemp:        DefaultOutgoingTemp,
		StorageType:         DefaultStorageType,
		NumberOfPeople:      DefaultNumberOfPeople,
		WorkingHours:        DefaultWorkingHours,
		LightingWattage:     DefaultLightingWattage,
		EquipmentLoad:       DefaultEquipmentLoad,
	}, got)
}

func TestNormalizer_Number(t *testing.T) {
	tests := []struct {
		name          string
		raw           RawValue
		zeroIsMissing bool
		want          float64
	}{
		{name: "plain", raw: "6", want: 6},
		{name: "decimal with spaces", raw: "  7.25 ", want: 7.25},
		{name: "negative", raw: "-18", want: -18},
		{name: "exponent", raw: "1e3", want: 1000},
		{name: "empty", raw: "", want: 42},
		{name: "blank", raw: "   ", want: 42},
		{name: "text", raw: "abc", want: 42},
		{name: "trailing text", raw: "12abc", want: 42},
		{name: "NaN", raw: "NaN", want: 42},
		{name: "infinity", raw: "+Inf", want: 42},
		{name: "overflow", raw: "1e400", want: 42},
		{name: "zero passes through", raw: "0", want: 0},
		{name: "zero with legacy policy", raw: "0", zeroIsMissing: true, want: 42},
		{name: "negative zero with legacy policy", raw: "-0", zeroIsMissing: true, want: 42},
		{name: "non-zero with legacy policy", raw: "3", zeroIsMissing: true, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := normalizer{zeroIsMissing: tt.zeroIsMissing}
			assert.Equal(t, tt.want, n.number(tt.raw, 42))
		})
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "PUF", key("", "PUF"))
	assert.Equal(t, "PUF", key("  ", "PUF"))
	assert.Equal(t, "EPS", key("EPS", "PUF"))
	assert.Equal(t, "0", key("0", "PUF"))
}
