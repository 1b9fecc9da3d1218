// Package payment creates Stripe payment intents for bookings. It is a thin
// pass-through to the Stripe API with a single minimum-amount check; payment
// state (confirmation, webhooks, refunds) is owned by Stripe.
package payment
