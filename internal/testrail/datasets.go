package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// DatasetsFilter narrows GetDatasets results.
type DatasetsFilter struct {
	Limit  int
	Offset int
}

// GetDatasets returns the test data datasets of a project.
func (c *Client) GetDatasets(ctx context.Context, projectID int, filter *DatasetsFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, fmt.Sprintf("get_datasets/%d", projectID), p)
}

// AddDataset creates a dataset in a project.
func (c *Client) AddDataset(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_dataset/%d", projectID), data, nil)
}

// UpdateDataset updates an existing dataset.
func (c *Client) UpdateDataset(ctx context.Context, datasetID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_dataset/%d", datasetID), data, nil)
}

// DeleteDataset deletes a dataset and the variable values it holds.
func (c *Client) DeleteDataset(ctx context.Context, datasetID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_dataset/%d", datasetID), nil, nil)
}
