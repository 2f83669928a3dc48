package handler

import (
	"net/http"
	"net/url"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

// Render redirects through SSE for DataStar requests and with a Location
// header otherwise.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return datastar.NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a 303 See Other redirect, the status to answer a POST with.
func Redirect(target string) Response {
	return redirectResponse{url: target, code: http.StatusSeeOther}
}

// RedirectWithCode creates a redirect with a custom status code.
func RedirectWithCode(target string, code int) Response {
	return redirectResponse{url: target, code: code}
}

type redirectBackResponse struct {
	fallback string
}

func (r redirectBackResponse) Render(w http.ResponseWriter, req *http.Request) error {
	target := r.fallback
	if ref := req.Header.Get("Referer"); ref != "" && sameHost(ref, req) {
		target = ref
	}
	return redirectResponse{url: target, code: http.StatusSeeOther}.Render(w, req)
}

// RedirectBack redirects to the Referer when it points at this host,
// otherwise to fallback.
func RedirectBack(fallback string) Response {
	return redirectBackResponse{fallback: fallback}
}

func sameHost(raw string, r *http.Request) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Host == "" || u.Host == r.Host
}
