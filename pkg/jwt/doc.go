// Package jwt issues and verifies the stateless bearer tokens used for
// authentication across the stayhub services.
//
// Tokens are HS256-signed and carry the user id and email plus issued-at
// and expiry timestamps. There is no revocation list: a token stays valid
// until its natural expiry regardless of later password changes or account
// deletion. The default lifetime is one day, overridable via JWT_TTL.
//
// Middleware guards protected routes:
//
//	r.Group(func(r chi.Router) {
//		r.Use(jwt.Middleware(tokenSvc))
//		r.Get("/profile", h.profile)
//	})
package jwt
