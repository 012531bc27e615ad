package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// AddAttachmentToCase uploads content as an attachment to a test case and
// returns the identifier TestRail assigns to it.
func (c *Client) AddAttachmentToCase(ctx context.Context, caseID int, filename string, content []byte) (json.RawMessage, error) {
	return c.sendMultipart(ctx, fmt.Sprintf("add_attachment_to_case/%d", caseID), filename, content)
}

// AddAttachmentToPlan uploads content as an attachment to a test plan.
func (c *Client) AddAttachmentToPlan(ctx context.Context, planID int, filename string, content []byte) (json.RawMessage, error) {
	return c.sendMultipart(ctx, fmt.Sprintf("add_attachment_to_plan/%d", planID), filename, content)
}

// AddAttachmentToPlanEntry uploads content as an attachment to a test plan
// entry.
func (c *Client) AddAttachmentToPlanEntry(ctx context.Context, planID int, entryID string, filename string, content []byte) (json.RawMessage, error) {
	return c.sendMultipart(ctx, fmt.Sprintf("add_attachment_to_plan_entry/%d/%s", planID, entryID), filename, content)
}

// AddAttachmentToResult uploads content as an attachment to a test result.
func (c *Client) AddAttachmentToResult(ctx context.Context, resultID int, filename string, content []byte) (json.RawMessage, error) {
	return c.sendMultipart(ctx, fmt.Sprintf("add_attachment_to_result/%d", resultID), filename, content)
}

// AddAttachmentToRun uploads content as an attachment to a test run.
func (c *Client) AddAttachmentToRun(ctx context.Context, runID int, filename string, content []byte) (json.RawMessage, error) {
	return c.sendMultipart(ctx, fmt.Sprintf("add_attachment_to_run/%d", runID), filename, content)
}

// GetAttachment downloads an attachment. The body is returned untouched;
// attachments are the one endpoint family that does not speak JSON.
func (c *Client) GetAttachment(ctx context.Context, attachmentID int) ([]byte, error) {
	return c.sendRaw(ctx, fmt.Sprintf("get_attachment/%d", attachmentID))
}

// DeleteAttachment deletes an attachment.
func (c *Client) DeleteAttachment(ctx context.Context, attachmentID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_attachment/%d", attachmentID), nil, nil)
}
