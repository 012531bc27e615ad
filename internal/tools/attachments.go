package tools

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// attachmentArgs extracts the filename and base64-encoded content shared by
// every upload tool. MCP arguments are JSON, so binary content travels as
// base64.
func attachmentArgs(request mcp.CallToolRequest) (filename string, content []byte, err error) {
	filename, err = request.RequireString("filename")
	if err != nil {
		return "", nil, err
	}
	encoded, err := request.RequireString("content")
	if err != nil {
		return "", nil, err
	}
	content, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("content is not valid base64: %w", err)
	}
	return filename, content, nil
}

func withAttachment() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("filename", mcp.Required(), mcp.Description("Name of the uploaded file")),
		mcp.WithString("content", mcp.Required(), mcp.Description("File content, base64-encoded")),
	}
}

func (r *Registry) attachmentTools() []server.ServerTool {
	uploadOpts := withAttachment()

	return []server.ServerTool{
		{
			Tool: mcp.NewTool("add_attachment_to_case",
				append([]mcp.ToolOption{
					mcp.WithDescription("Upload an attachment to a test case"),
					mcp.WithNumber("case_id", mcp.Required(), mcp.Description("Test case ID")),
				}, uploadOpts...)...,
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				caseID, err := request.RequireInt("case_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filename, content, err := attachmentArgs(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddAttachmentToCase(ctx, caseID, filename, content))
			},
		},
		{
			Tool: mcp.NewTool("add_attachment_to_plan",
				append([]mcp.ToolOption{
					mcp.WithDescription("Upload an attachment to a test plan"),
					mcp.WithNumber("plan_id", mcp.Required(), mcp.Description("Test plan ID")),
				}, uploadOpts...)...,
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				planID, err := request.RequireInt("plan_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filename, content, err := attachmentArgs(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddAttachmentToPlan(ctx, planID, filename, content))
			},
		},
		{
			Tool: mcp.NewTool("add_attachment_to_plan_entry",
				append([]mcp.ToolOption{
					mcp.WithDescription("Upload an attachment to a test plan entry"),
					mcp.WithNumber("plan_id", mcp.Required(), mcp.Description("Test plan ID")),
					mcp.WithString("entry_id", mcp.Required(), mcp.Description("Plan entry ID")),
				}, uploadOpts...)...,
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				planID, err := request.RequireInt("plan_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				entryID, err := request.RequireString("entry_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filename, content, err := attachmentArgs(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddAttachmentToPlanEntry(ctx, planID, entryID, filename, content))
			},
		},
		{
			Tool: mcp.NewTool("add_attachment_to_result",
				append([]mcp.ToolOption{
					mcp.WithDescription("Upload an attachment to a test result"),
					mcp.WithNumber("result_id", mcp.Required(), mcp.Description("Test result ID")),
				}, uploadOpts...)...,
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				resultID, err := request.RequireInt("result_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filename, content, err := attachmentArgs(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddAttachmentToResult(ctx, resultID, filename, content))
			},
		},
		{
			Tool: mcp.NewTool("add_attachment_to_run",
				append([]mcp.ToolOption{
					mcp.WithDescription("Upload an attachment to a test run"),
					mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
				}, uploadOpts...)...,
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				runID, err := request.RequireInt("run_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filename, content, err := attachmentArgs(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddAttachmentToRun(ctx, runID, filename, content))
			},
		},
		{
			Tool: mcp.NewTool("get_attachment",
				mcp.WithDescription("Download an attachment. The content is returned base64-encoded"),
				mcp.WithNumber("attachment_id", mcp.Required(), mcp.Description("Attachment ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				attachmentID, err := request.RequireInt("attachment_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				content, err := r.client.GetAttachment(ctx, attachmentID)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(base64.StdEncoding.EncodeToString(content)), nil
			},
		},
		{
			Tool: mcp.NewTool("delete_attachment",
				mcp.WithDescription("Delete an attachment"),
				mcp.WithNumber("attachment_id", mcp.Required(), mcp.Description("Attachment ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				attachmentID, err := request.RequireInt("attachment_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteAttachment(ctx, attachmentID))
			},
		},
	}
}
