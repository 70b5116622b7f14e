package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyguard/protect-cli/models"
)

func TestSignature_Deterministic(t *testing.T) {
	keys := models.Keys{AccessKey: "AK", SecretKey: "SK"}

	mac := hmac.New(sha256.New, []byte("SK"))
	mac.Write([]byte("GET;/application/protections/p;AK;2026-08-27T00:00:00Z"))
	expected := hex.EncodeToString(mac.Sum(nil))

	got := signature(keys, "GET", "/application/protections/p", "2026-08-27T00:00:00Z")
	assert.Equal(t, expected, got)
	assert.Equal(t, got, signature(keys, "GET", "/application/protections/p", "2026-08-27T00:00:00Z"))
}

func TestSignature_SensitiveToEveryPart(t *testing.T) {
	keys := models.Keys{AccessKey: "AK", SecretKey: "SK"}
	base := signature(keys, "GET", "/path", "ts")

	assert.NotEqual(t, base, signature(keys, "POST", "/path", "ts"))
	assert.NotEqual(t, base, signature(keys, "GET", "/other", "ts"))
	assert.NotEqual(t, base, signature(keys, "GET", "/path", "ts2"))
	assert.NotEqual(t, base, signature(models.Keys{AccessKey: "AK", SecretKey: "XX"}, "GET", "/path", "ts"))
}

func TestRequestPath(t *testing.T) {
	assert.Equal(t, "/a/b", requestPath("/a/b"))
	assert.Equal(t, "/a/b", requestPath("https://host:443/a/b?x=1"))
}
