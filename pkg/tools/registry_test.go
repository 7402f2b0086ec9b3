package tools

import (
	"context"
	"strings"
	"testing"
)

// fakeTool is a minimal Tool with a configurable definition.
type fakeTool struct {
	def ToolDefinition
}

func (f *fakeTool) Definition() ToolDefinition { return f.def }

func (f *fakeTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	return "ok", nil
}

func validDef(name string) ToolDefinition {
	return ToolDefinition{
		Name:        name,
		Description: "test tool",
		Parameters: JSONSchema{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{"type": "string"},
			},
			"required": []string{"query"},
		},
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&fakeTool{def: validDef("calc_tax")}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tool, err := r.Get("calc_tax")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if tool.Definition().Name != "calc_tax" {
		t.Errorf("got tool %q, want calc_tax", tool.Definition().Name)
	}

	if _, err := r.Get("missing"); err == nil {
		t.Error("Get(missing) expected error, got nil")
	}
}

func TestRegistryValidation(t *testing.T) {
	tests := []struct {
		name    string
		def     ToolDefinition
		wantErr string
	}{
		{
			name:    "empty name",
			def:     ToolDefinition{Parameters: JSONSchema{"type": "object"}},
			wantErr: "name cannot be empty",
		},
		{
			name:    "nil parameters",
			def:     ToolDefinition{Name: "x"},
			wantErr: "parameters cannot be nil",
		},
		{
			name:    "missing type",
			def:     ToolDefinition{Name: "x", Parameters: JSONSchema{"properties": map[string]interface{}{}}},
			wantErr: "must have 'type' field",
		},
		{
			name:    "wrong type",
			def:     ToolDefinition{Name: "x", Parameters: JSONSchema{"type": "array"}},
			wantErr: "must be 'object'",
		},
		{
			name: "required not an array",
			def: ToolDefinition{
				Name:       "x",
				Parameters: JSONSchema{"type": "object", "required": "query"},
			},
			wantErr: "must be an array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(&fakeTool{def: tt.def})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRegistryNamesAndDefinitions(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"web_search", "calc_tax", "search_papers"} {
		if err := r.Register(&fakeTool{def: validDef(name)}); err != nil {
			t.Fatalf("Register(%s) error = %v", name, err)
		}
	}

	names := r.Names()
	want := []string{"calc_tax", "search_papers", "web_search"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if defs := r.GetDefinitions(); len(defs) != 3 {
		t.Errorf("GetDefinitions() returned %d definitions, want 3", len(defs))
	}
}
