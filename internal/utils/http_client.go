// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "easylearn"

// HTTPClient embeds *resty.Client, so every resty method is available
// directly on it.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client bound to baseURL. Every request sends
// the "easylearn" User-Agent and is bounded by timeout; a zero timeout means
// no limit.
//
// Each call returns an independent client with its own connection pool.
//
//	client := utils.NewHTTPClient("http://localhost:5000", 3*time.Second)
//	resp, err := client.R().SetResult(&health).Get("/api/health")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
