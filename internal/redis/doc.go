// Package redis implements the Redis-backed session stores.
//
// Provides PracticeRepo (shuffled pool + counters per practice run) and
// SimuladoRepo (ordered exam run with a cursor). Session state lives in a
// hash plus a list per session, both under a sliding 24h TTL.
package redis
