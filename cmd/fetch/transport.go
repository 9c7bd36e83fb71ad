package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

type captureKey struct{}

// responseCapture holds the status and, for anything but 200, the body of
// the response to a request whose context carries it.
type responseCapture struct {
	status int
	body   []byte
}

func withResponseCapture(ctx context.Context) (context.Context, *responseCapture) {
	c := &responseCapture{}
	return context.WithValue(ctx, captureKey{}, c), c
}

// capturingTransport records responses for requests made with
// withResponseCapture. The body is buffered and handed back unchanged.
type capturingTransport struct {
	base http.RoundTripper
}

func (t capturingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	c, ok := req.Context().Value(captureKey{}).(*responseCapture)
	if !ok {
		return resp, nil
	}

	c.status = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		c.body = body
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}

	return resp, nil
}
