package main

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/gofind/internal/options"
	"github.com/taigrr/gofind/internal/types"
	"github.com/taigrr/gofind/internal/uri"
	"github.com/taigrr/gofind/internal/walk"
)

const defaultLimit = 500

var errLimitReached = errors.New("match limit reached")

type (
	// FindInput contains parameters for the find tool.
	FindInput struct {
		Path  string `json:"path" jsonschema:"File or directory to start searching from"`
		Name  string `json:"name,omitempty" jsonschema:"Glob the final path component must match (* and ? wildcards)"`
		IName string `json:"iname,omitempty" jsonschema:"Like name but case-insensitive"`
		Type  string `json:"type,omitempty" jsonschema:"Restrict to regular files (f) or directories (d)"`
		Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of matches to return (default: 500)"`
	}

	// FindOutput contains the matches of a find call.
	FindOutput struct {
		Matches   []types.FindMatch `json:"matches"`
		Total     int               `json:"total"`
		Truncated bool              `json:"truncated,omitempty"`
		Errors    []string          `json:"errors,omitempty"`
	}
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve find as an MCP tool over stdio",
		Long: `serve runs a Model Context Protocol server on stdin/stdout exposing
a single "find" tool with the same matching rules as the command line.`,
		Args: cobra.NoArgs,
		RunE: runServer,
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "find",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return errors.Wrap(err, "error running server")
	}

	return nil
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find",
		Description: "Recursively search a directory tree. Returns paths whose final component matches name/iname globs and whose type matches (f=file, d=directory). Symlinks are listed but not followed.",
	}, handleFind)
}

func handleFind(ctx context.Context, req *mcp.CallToolRequest, input FindInput) (*mcp.CallToolResult, FindOutput, error) {
	path := strings.TrimSpace(input.Path)
	if path == "" {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, errors.New("path cannot be empty")
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &mcp.CallToolResult{IsError: true}, FindOutput{}, errors.Newf("path not found: %s", path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return &mcp.CallToolResult{IsError: true}, FindOutput{}, errors.Newf("permission denied: %s", path)
		}
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, errors.Wrapf(err, "failed to stat %s", path)
	}

	fc, err := options.FromParams(types.FindParams{
		Path:  path,
		Name:  input.Name,
		IName: input.IName,
		Type:  input.Type,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	output := FindOutput{Matches: []types.FindMatch{}}

	opts := []walk.Option{walk.WithResolver(resolver)}
	if settings.ContinueOnError() {
		opts = append(opts, walk.WithErrorHandler(func(_ string, err error) error {
			output.Errors = append(output.Errors, err.Error())
			return nil
		}))
	}

	_, err = walk.New(fc, opts...).Walk(path, func(p string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(output.Matches) >= limit {
			output.Truncated = true
			return errLimitReached
		}
		output.Matches = append(output.Matches, types.FindMatch{Path: p, URI: uri.FileURI(p)})
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	output.Total = len(output.Matches)
	return nil, output, nil
}
