package types

// Category groups services by what they do
type Category string

const (
	CategoryUnits Category = "units"
)

// Service describes a provider and the tools it exposes
type Service struct {
	ID           string   `json:"id" yaml:"id" toml:"id"`
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Description  string   `json:"description" yaml:"description" toml:"description"`
	Category     Category `json:"category" yaml:"category" toml:"category"`
	Capabilities []string `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
	Tools        []Tool   `json:"tools" yaml:"tools" toml:"tools"`
}

// Tool represents a callable operation of a service
type Tool struct {
	ID          string      `json:"id" yaml:"id" toml:"id"`
	Name        string      `json:"name" yaml:"name" toml:"name"`
	Description string      `json:"description" yaml:"description" toml:"description"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters" toml:"parameters"`
	Returns     string      `json:"returns" yaml:"returns" toml:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Type        string `json:"type" yaml:"type" toml:"type"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Required    bool   `json:"required" yaml:"required" toml:"required"`
}

// Context identifies the caller of a tool
type Context struct {
	Caller    *string `json:"caller,omitempty"`
	RequestID *string `json:"request_id,omitempty"`
}

// Result is the outcome of a tool execution
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// ErrorMessage returns the failure message, or "" on success
func (r *Result) ErrorMessage() string {
	if r == nil || r.Error == nil {
		return ""
	}
	return *r.Error
}
