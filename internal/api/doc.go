// Package api contains the HTTP handlers for the quest and user resources
// and the translation of service errors into transport-level responses.
package api
