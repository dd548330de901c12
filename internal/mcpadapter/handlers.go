package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/dlist/internal/executor"
	"github.com/povarna/dlist/internal/models"
)

// CommandInput is the MCP tool input schema for a single list command.
type CommandInput struct {
	ID     string `json:"id,omitempty" jsonschema:"optional identifier echoed back in the result"`
	List   string `json:"list" jsonschema:"name of the list to operate on"`
	Op     string `json:"op" jsonschema:"operation: create, add_front, push, add_back, enqueue, remove_front, pop, dequeue, delete_value, delete_at, sorted_insert, reverse, remove_duplicates, clone, contains, render or drop"`
	Value  *int   `json:"value,omitempty" jsonschema:"integer operand for inserts, delete_value and contains"`
	Index  *int   `json:"index,omitempty" jsonschema:"zero-based position for delete_at"`
	Target string `json:"target,omitempty" jsonschema:"destination list name for clone"`
}

type NamesInput struct{}

type NamesOutput struct {
	Names []string `json:"names" jsonschema:"names of the stored lists in sorted order"`
}

// NewCommandHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewCommandHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, CommandInput) (*mcp.CallToolResult, models.Result, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CommandInput) (*mcp.CallToolResult, models.Result, error) {
		return RunCommand(ctx, exec, req, input)
	}
}

// RunCommand applies one command. List operation failures are reported in
// the result rather than as a tool error so the caller still sees the list.
func RunCommand(
	ctx context.Context,
	exec *executor.Executor,
	req *mcp.CallToolRequest,
	input CommandInput,
) (*mcp.CallToolResult, models.Result, error) {
	cmd := models.Command{
		ID:     input.ID,
		List:   input.List,
		Op:     models.Operation(input.Op),
		Value:  input.Value,
		Index:  input.Index,
		Target: input.Target,
	}

	result, err := exec.Execute(ctx, cmd)
	if err != nil && result.ErrorKind == models.ErrorKindInternal {
		return nil, result, err
	}
	return nil, result, nil
}

// NewNamesHandler returns a tool handler listing the stored lists.
func NewNamesHandler(exec *executor.Executor) func(context.Context, *mcp.CallToolRequest, NamesInput) (*mcp.CallToolResult, NamesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input NamesInput) (*mcp.CallToolResult, NamesOutput, error) {
		return nil, NamesOutput{Names: exec.Names()}, nil
	}
}
