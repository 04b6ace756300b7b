// Package service implements the business rules for each resource type's
// CRUD lifecycle. The shared skeleton lives in the generic Resource type;
// per-resource rules (identity vs. natural-key uniqueness, default role
// assignment, category search) are layered on top in QuestService and
// UserService.
package service
