// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net"
	"net/http"
)

// IsConnectionSecure returns whether a connection is secure.
//
// Target environments are (containerized and bare metal):
//   - Internet -> reverse proxy -> application
//   - LAN -> application
//   - localhost -> application
//
// X-Forwarded-Proto is only trusted when the peer has a private or loopback
// address, which is where a reverse proxy normally sits.
func IsConnectionSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return false
	}

	parsedIP := net.ParseIP(host)
	if parsedIP == nil {
		return false
	}

	return (parsedIP.IsPrivate() || parsedIP.IsLoopback()) && r.Header.Get("X-Forwarded-Proto") == "https"
}

// GetOriginFromRequest returns the scheme and host the client used to reach us.
func GetOriginFromRequest(r *http.Request) string {
	scheme := "http"
	if IsConnectionSecure(r) {
		scheme = "https"
	}

	return scheme + "://" + r.Host
}
