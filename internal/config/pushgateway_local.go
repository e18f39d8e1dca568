//go:build !gcloud

package config

import "errors"

func (c *PushGatewayConfig) Validate() error {
	if c.GatewayURL == "" {
		return errors.New("PUSH_GATEWAY_URL is required")
	}
	return nil
}
