// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/unrolled/secure"
)

// Header values sent on every response.
const (
	frameOptionsValue          = "SAMEORIGIN"
	contentSecurityPolicyValue = "default-src 'self'; object-src 'none'"
	referrerPolicyValue        = "strict-origin-when-cross-origin"
)

// newSecureMiddleware configures unrolled/secure from cfg. Plain-HTTP
// requests are redirected with 301 only when cfg.ForceHTTPS is set; a
// request counts as HTTPS when it arrived over TLS or a proxy marked it with
// X-Forwarded-Proto: https.
func newSecureMiddleware(cfg config.Security) *secure.Secure {
	return secure.New(secure.Options{
		SSLRedirect:             cfg.ForceHTTPS,
		SSLProxyHeaders:         map[string]string{"X-Forwarded-Proto": "https"},
		STSSeconds:              cfg.HSTSSeconds,
		STSIncludeSubdomains:    cfg.HSTSSeconds > 0,
		CustomFrameOptionsValue: frameOptionsValue,
		ContentTypeNosniff:      true,
		ContentSecurityPolicy:   contentSecurityPolicyValue,
		ReferrerPolicy:          referrerPolicyValue,
	})
}

func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	return newSecureMiddleware(h.security).Handler(next)
}
