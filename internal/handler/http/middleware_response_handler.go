// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to capture the status
// code and body size for the request log, without buffering the body.
//
// WriteHeader is forwarded to the underlying writer at most once, as the
// [http.ResponseWriter] contract documents; later calls are ignored.
type responseWriter struct {
	http.ResponseWriter

	// status set on the first WriteHeader call, zero before that.
	status int

	wroteHeader bool

	// size accumulates bytes written to the body across Write calls.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly sending a 200
// header first if none was written, like the standard library does.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
