package gemini

import "net/http"

// apiKeyHeader is where the genai SDK puts the API key.
const apiKeyHeader = "x-goog-api-key"

// queryKeyTransport moves the API key from the SDK's request header into the
// "key" URL query parameter.
type queryKeyTransport struct {
	base http.RoundTripper
}

func (t *queryKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key := req.Header.Get(apiKeyHeader)
	if key == "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Del(apiKeyHeader)
	q := r.URL.Query()
	q.Set("key", key)
	r.URL.RawQuery = q.Encode()
	return t.base.RoundTrip(r)
}
