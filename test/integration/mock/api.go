package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

type stubbedResponse struct {
	status int
	body   any
}

type recordedRequest struct {
	body    map[string]any
	headers map[string]string
	queries map[string]string
}

// ApiMock is a recording HTTP stub used to stand in for the external delay
// prediction oracle. Paths may use "*" segments to match any value.
type ApiMock struct {
	mu        sync.Mutex
	responses map[string]stubbedResponse
	requests  map[string][]recordedRequest
	mockUrl   string
}

// NewApiServer creates a new API mock. Call Start before pointing clients at it.
func NewApiServer() *ApiMock {
	return &ApiMock{
		responses: map[string]stubbedResponse{},
		requests:  map[string][]recordedRequest{},
	}
}

// Start spins up the underlying test server.
func (a *ApiMock) Start() {
	server := httptest.NewServer(http.HandlerFunc(a.handle))
	a.mockUrl = server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := r.Method + r.URL.Path

	rawBody, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(rawBody, &body)

	headers := map[string]string{}
	for name, values := range r.Header {
		headers[name] = values[0]
	}
	queries := map[string]string{}
	for name, values := range r.URL.Query() {
		queries[name] = values[0]
	}

	a.requests[key] = append(a.requests[key], recordedRequest{
		body:    body,
		headers: headers,
		queries: queries,
	})

	response, ok := a.lookupResponse(r.Method, r.URL.Path)
	if !ok {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{}"))
		return
	}

	w.WriteHeader(response.status)
	encoded, _ := json.Marshal(response.body)
	_, _ = w.Write(encoded)
}

// GetUrl returns the base URL of the running mock.
func (a *ApiMock) GetUrl() string {
	return a.mockUrl
}

// SetResponse stubs the response for a method and path pattern.
func (a *ApiMock) SetResponse(method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = stubbedResponse{status: status, body: response}
}

// RequestCount reports how many requests matched the method and path pattern.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	count := 0
	for key, received := range a.requests {
		if a.matchKey(method, path, key) {
			count += len(received)
		}
	}
	return count
}

// GetRequestHeaders returns the headers of the nth matching request.
func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()

	for key, received := range a.requests {
		if a.matchKey(method, path, key) && index < len(received) {
			return received[index].headers
		}
	}
	return nil
}

// Clear drops all stubbed responses and recorded requests.
func (a *ApiMock) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses = map[string]stubbedResponse{}
	a.requests = map[string][]recordedRequest{}
}

func (a *ApiMock) lookupResponse(method, path string) (stubbedResponse, bool) {
	if response, ok := a.responses[method+path]; ok {
		return response, true
	}
	for key, response := range a.responses {
		if strings.HasPrefix(key, method) && a.matchPath(strings.TrimPrefix(key, method), path) {
			return response, true
		}
	}
	return stubbedResponse{}, false
}

func (a *ApiMock) matchKey(method, pattern, key string) bool {
	if !strings.HasPrefix(key, method) {
		return false
	}
	return a.matchPath(pattern, strings.TrimPrefix(key, method))
}

func (a *ApiMock) matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
