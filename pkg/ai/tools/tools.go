package tools

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	FUNC_GET_WEATHER         = "getWeather"
	FUNC_CONVERT_TEMPERATURE = "convertTemperature"
	FUNC_SEARCH_JOURNAL      = "searchJournal"
)

// FunctionDefine lists the assistant's callable tools.
var FunctionDefine = lo.Map([]*openai.FunctionDefinition{
	{
		Name:        FUNC_GET_WEATHER,
		Description: "Get the current weather for a city",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"city": {
					Type:        jsonschema.String,
					Description: "City name, e.g. Berlin",
				},
			},
			Required: []string{"city"},
		},
	},
	{
		Name:        FUNC_CONVERT_TEMPERATURE,
		Description: "Convert a temperature between celsius and fahrenheit",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"value": {
					Type:        jsonschema.Number,
					Description: "The temperature value to convert",
				},
				"from": {
					Type:        jsonschema.String,
					Description: "Source unit",
					Enum:        []string{"celsius", "fahrenheit"},
				},
				"to": {
					Type:        jsonschema.String,
					Description: "Target unit",
					Enum:        []string{"celsius", "fahrenheit"},
				},
			},
			Required: []string{"value", "from", "to"},
		},
	},
	{
		Name:        FUNC_SEARCH_JOURNAL,
		Description: "Search the user's own journal entries by keyword and return the best matches",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"query": {
					Type:        jsonschema.String,
					Description: "Keyword to search for",
				},
			},
			Required: []string{"query"},
		},
	},
}, func(item *openai.FunctionDefinition, _ int) openai.Tool {
	return openai.Tool{
		Type:     openai.ToolTypeFunction,
		Function: item,
	}
})

type GetWeatherArgs struct {
	City string `json:"city"`
}

// GetWeather is a demo tool with canned conditions; it does not call a real
// weather provider.
func GetWeather(args GetWeatherArgs) string {
	conditions := []string{"sunny", "cloudy", "light rain", "clear"}
	pick := conditions[len(args.City)%len(conditions)]
	temp := 12 + len(args.City)%15
	return fmt.Sprintf("Weather in %s: %s, %d°C", args.City, pick, temp)
}

type ConvertTemperatureArgs struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}

func ConvertTemperature(args ConvertTemperatureArgs) (float64, error) {
	from := strings.ToLower(args.From)
	to := strings.ToLower(args.To)

	if from == to {
		return args.Value, nil
	}

	switch {
	case from == "celsius" && to == "fahrenheit":
		return args.Value*9/5 + 32, nil
	case from == "fahrenheit" && to == "celsius":
		return (args.Value - 32) * 5 / 9, nil
	}
	return 0, fmt.Errorf("unsupported temperature conversion %s -> %s", args.From, args.To)
}
