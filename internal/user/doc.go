// Package user implements the authentication and credential lifecycle of the
// user service: registration, login, profile read/update, password change and
// account deletion.
//
// The Service holds the business rules and raises typed sentinel errors; the
// Handler owns the HTTP contract and the error-to-status mapping; Storage is
// a narrow interface the Service consumes, implemented by MongoStorage. The
// unique email index makes email uniqueness a store invariant rather than a
// check-then-act application concern.
package user
