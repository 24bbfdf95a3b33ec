// Package service groups the transaction services: ingestion, retention, reads and the chain follower.
package service
