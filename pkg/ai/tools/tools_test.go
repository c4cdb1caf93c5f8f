package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTemperature(t *testing.T) {
	got, err := ConvertTemperature(ConvertTemperatureArgs{Value: 0, From: "celsius", To: "fahrenheit"})
	require.NoError(t, err)
	assert.Equal(t, 32.0, got)

	got, err = ConvertTemperature(ConvertTemperatureArgs{Value: 212, From: "fahrenheit", To: "celsius"})
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	got, err = ConvertTemperature(ConvertTemperatureArgs{Value: 21.5, From: "celsius", To: "celsius"})
	require.NoError(t, err)
	assert.Equal(t, 21.5, got)

	_, err = ConvertTemperature(ConvertTemperatureArgs{Value: 1, From: "celsius", To: "kelvin"})
	assert.Error(t, err)
}

func TestGetWeatherDeterministic(t *testing.T) {
	a := GetWeather(GetWeatherArgs{City: "Berlin"})
	b := GetWeather(GetWeatherArgs{City: "Berlin"})
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Berlin")
}

func TestFunctionDefine(t *testing.T) {
	names := make(map[string]bool)
	for _, tool := range FunctionDefine {
		names[tool.Function.Name] = true
	}
	assert.True(t, names[FUNC_GET_WEATHER])
	assert.True(t, names[FUNC_CONVERT_TEMPERATURE])
	assert.True(t, names[FUNC_SEARCH_JOURNAL])
}
