package ports

import (
	"net/http"
	"net/url"
)

// ProxyProvider yields the proxy selection function used for outbound
// registry and URL fetches. The default implementation honors HTTP_PROXY,
// HTTPS_PROXY and NO_PROXY; core logic never inspects the platform directly.
type ProxyProvider interface {
	ProxyFunc() func(*http.Request) (*url.URL, error)
}
