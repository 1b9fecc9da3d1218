// Package booking implements hotel reservation CRUD for the booking service:
// single-document inserts and reads with ownership enforced from the bearer
// token. No multi-document transactions; per-document atomicity comes from
// the store.
package booking
