// SPDX-License-Identifier: Apache-2.0

package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/polyguard/protect-cli/models"
)

// signingMiddleware attaches the access key, a timestamp and an HMAC-SHA256
// signature to every outgoing request. Requests without credentials are sent
// unsigned; the service rejects them with 401 and mapHTTPError surfaces
// that.
func signingMiddleware(keys models.Keys) resty.RequestMiddleware {
	return func(_ *resty.Client, r *resty.Request) error {
		if keys.AccessKey == "" || keys.SecretKey == "" {
			return nil
		}

		timestamp := time.Now().UTC().Format(time.RFC3339)
		r.SetQueryParams(map[string]string{
			"access_key": keys.AccessKey,
			"timestamp":  timestamp,
			"signature":  signature(keys, r.Method, requestPath(r.URL), timestamp),
		})
		return nil
	}
}

// signature computes hex(HMAC-SHA256(secret, method;path;accessKey;ts)).
func signature(keys models.Keys, method, path, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(keys.SecretKey))
	mac.Write([]byte(strings.Join([]string{method, path, keys.AccessKey, timestamp}, ";")))
	return hex.EncodeToString(mac.Sum(nil))
}

// requestPath extracts the path portion of a possibly relative request URL.
func requestPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}
