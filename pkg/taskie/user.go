package taskie

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// GetUserProfile lists tasks first, then fetches the profile.
//
// A list failure that is not ErrNoData stops here and no profile request
// is made. ErrNoData (including ErrNoTasks) counts as zero tasks.
func (c *Client) GetUserProfile(ctx context.Context) (UserProfile, error) {
	tasks, err := c.ListTasks(ctx)
	if err != nil && !errors.Is(err, ErrNoData) {
		return UserProfile{}, err
	}

	var resp userProfileResponse
	if err := c.do(ctx, http.MethodGet, PathUserProfile, nil, nil, &resp); err != nil {
		return UserProfile{}, err
	}
	if resp.Email == nil || resp.Name == nil {
		return UserProfile{}, fmt.Errorf("%w: profile response is incomplete", ErrNoData)
	}

	return UserProfile{
		Email:     *resp.Email,
		Name:      *resp.Name,
		TaskCount: len(tasks),
	}, nil
}
