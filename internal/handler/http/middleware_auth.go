// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/fintest/plaidbox/internal/utils"
)

// withAuth resolves the caller's session and injects credentials, session
// id, and any retained access token into the request context. Requests
// without usable credentials get a 401; an undecryptable blob additionally
// has its session and cookies destroyed before the 401 goes out (the
// credential store clears fail-closed).
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.credentials.Load(w, r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.CredentialsCtxKey, sess.Credentials)
		ctx = context.WithValue(ctx, utils.SessionIDCtxKey, sess.ID)
		ctx = context.WithValue(ctx, utils.AccessTokenCtxKey, sess.AccessToken)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
