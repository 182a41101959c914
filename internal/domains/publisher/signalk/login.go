package signalk

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Fivegen-LLC/peplink-monitor/internal/constants"
	"github.com/Fivegen-LLC/peplink-monitor/internal/errs"
)

const (
	loginRetryCount = 3
	loginReqTimeout = 5 * time.Second
)

type loginClient struct {
	client *resty.Client
}

func newLoginClient(baseURL string) *loginClient {
	return &loginClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetRetryCount(loginRetryCount).
			SetTimeout(loginReqTimeout),
	}
}

// Login exchanges Signal K credentials for an access token.
func (c *loginClient) Login(ctx context.Context, username, password string) (token string, err error) {
	var respBody struct {
		Token string `json:"token"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&respBody).
		Post(constants.SignalKLoginPath)
	if err != nil {
		return token, fmt.Errorf("Login: %w", err)
	}

	if resp.IsError() {
		return token, fmt.Errorf("Login: %s: %w", resp.Status(), errs.ErrAPIError)
	}

	return respBody.Token, nil
}
