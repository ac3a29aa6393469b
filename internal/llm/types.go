package llm

// Message - один ход диалога в формате chat completions.
// Роли: system, user, assistant, tool.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall - запрошенный моделью вызов инструмента
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall - имя инструмента и его аргументы (JSON-строка)
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Tool - описание инструмента, которое видит модель
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

type Function struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  Schema `json:"parameters"`
}

// Schema - JSON Schema параметров инструмента
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties,omitempty"`
	Required   []string            `json:"required,omitempty"`
}

type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ObjectSchema собирает схему параметров-объекта
func ObjectSchema(properties map[string]Property, required ...string) Schema {
	return Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
