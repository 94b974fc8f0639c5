package resilience

import (
	"syscall"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "deadline exceeded" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsTransient(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTransient(nil))
	assert.True(t, IsTransient(timeoutErr{}))
	assert.True(t, IsTransient(syscall.ECONNRESET))
	assert.True(t, IsTransient(syscall.ECONNREFUSED))
	assert.True(t, IsTransient(eris.Wrap(syscall.ECONNABORTED, "fetch")))
	assert.True(t, IsTransient(eris.New("read tcp: connection reset by peer")))
	assert.True(t, IsTransient(eris.New("net/http: TLS handshake timeout")))
	assert.True(t, IsTransient(eris.New("dial tcp: i/o timeout")))

	assert.False(t, IsTransient(eris.New("no such host")))
	assert.False(t, IsTransient(eris.New("certificate signed by unknown authority")))
	assert.False(t, IsTransient(eris.New("status 404")))
}

func TestIsTransientHTTPStatus(t *testing.T) {
	t.Parallel()

	for _, code := range []int{408, 429, 500, 502, 503, 504} {
		assert.True(t, IsTransientHTTPStatus(code), "code %d", code)
	}
	for _, code := range []int{200, 301, 400, 401, 403, 404, 410} {
		assert.False(t, IsTransientHTTPStatus(code), "code %d", code)
	}
}
