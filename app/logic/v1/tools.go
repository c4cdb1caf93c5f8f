package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/daygo-app/daygo/pkg/ai/tools"
)

// dispatchTool executes one model-requested tool call. Errors are returned
// to the model as text so it can recover in the next turn.
func (l *ChatLogic) dispatchTool(call openai.ToolCall) string {
	switch call.Function.Name {
	case tools.FUNC_GET_WEATHER:
		var args tools.GetWeatherArgs
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return toolError(call.Function.Name, err)
		}
		return tools.GetWeather(args)

	case tools.FUNC_CONVERT_TEMPERATURE:
		var args tools.ConvertTemperatureArgs
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return toolError(call.Function.Name, err)
		}
		value, err := tools.ConvertTemperature(args)
		if err != nil {
			return toolError(call.Function.Name, err)
		}
		return fmt.Sprintf("%.2f %s", value, args.To)

	case tools.FUNC_SEARCH_JOURNAL:
		var args struct {
			Query string `json:"query"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return toolError(call.Function.Name, err)
		}
		return l.searchJournalTool(args.Query)

	default:
		slog.Warn("assistant requested unknown tool", slog.String("tool", call.Function.Name))
		return fmt.Sprintf("unknown tool %q", call.Function.Name)
	}
}

// searchJournalTool surfaces the caller's best-matching entries as plain
// text for the model.
func (l *ChatLogic) searchJournalTool(query string) string {
	results, err := NewEntryLogic(l.ctx, l.core).SearchEntries(query, 5)
	if err != nil {
		return toolError(tools.FUNC_SEARCH_JOURNAL, err)
	}
	if len(results) == 0 {
		return "No journal entries matched the query."
	}

	var b strings.Builder
	for i, item := range results {
		content := item.Entry.Content
		if len(content) > 300 {
			content = content[:300] + "..."
		}
		fmt.Fprintf(&b, "%d. %s (relevance %.2f)\n%s\n", i+1, item.Entry.Title, item.Score, content)
	}
	return b.String()
}

func toolError(tool string, err error) string {
	return fmt.Sprintf("tool %s failed: %v", tool, err)
}
