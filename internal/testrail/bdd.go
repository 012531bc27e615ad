package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// BDDStepsFilter narrows GetBDDSteps results.
type BDDStepsFilter struct {
	Limit  int
	Offset int
}

// GetBDDSteps returns the BDD steps of a project.
func (c *Client) GetBDDSteps(ctx context.Context, projectID int, filter *BDDStepsFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, fmt.Sprintf("get_bdd_steps/%d", projectID), p)
}
