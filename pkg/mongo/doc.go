// Package mongo manages the shared MongoDB client for the stayhub services.
//
// Configuration is environment-driven (see Config), connection establishment
// retries transient failures at startup, and Healthcheck integrates with the
// HTTP health endpoint. Both services construct exactly one client in main,
// pass the database handle into their stores, and disconnect on shutdown.
package mongo
