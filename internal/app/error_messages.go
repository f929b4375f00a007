// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-layer constants shared by the HTTP
// handlers and the API client.
//
// Code* constants are the stable machine-readable error codes of the JSON
// envelope. Msg* constants are the public messages written next to them.
// Keeping both in one place keeps the wording identical on both sides of the
// wire.
package app

// Error codes of the failure envelope.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidJSON        = "INVALID_JSON"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidSession     = "INVALID_SESSION"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateName      = "DUPLICATE_NAME"
	CodeDuplicateUsername  = "DUPLICATE_USERNAME"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeServerError        = "SERVER_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Public messages of the failure envelope.
const (
	MsgInvalidJSON        = "Invalid JSON in request body"
	MsgUnauthorized       = "Authentication required"
	MsgInvalidSession     = "Invalid or expired session"
	MsgInvalidCredentials = "Invalid username or password"
	MsgForbidden          = "Access denied"
	MsgNotFound           = "Resource not found"
	MsgRouteNotFound      = "Endpoint not found"
	MsgMethodNotAllowed   = "Method not allowed"
	MsgDatabaseError      = "Database error occurred"
	MsgServerError        = "Internal server error"
	MsgRateLimited        = "Too many requests, try again later"
	MsgUnhealthy          = "Database is unreachable"

	MsgUserNotFound     = "User not found"
	MsgCategoryNotFound = "Category not found"
	MsgTagNotFound      = "Tag not found"
	MsgActivityNotFound = "Activity not found"

	MsgCategoryForbidden = "Category does not belong to user"
	MsgTagForbidden      = "Tag does not belong to user"
	MsgActivityForbidden = "Activity does not belong to user"

	MsgDuplicateUsername = "Username already exists"
	MsgDuplicateEmail    = "Email already exists"
	MsgDuplicateCategory = "Category name already exists"
	MsgDuplicateTag      = "Tag name already exists"

	MsgInvalidID        = "Invalid ID"
	MsgInvalidDays      = "days must be an integer between 1 and 365"
	MsgInvalidIDList    = "IDs must be comma-separated positive integers"
	MsgLoggedOut        = "Logged out successfully"
	MsgCategoryDeleted  = "Category deleted successfully"
	MsgTagDeleted       = "Tag deleted successfully"
	MsgActivityDeleted  = "Activity deleted successfully"
	MsgInvalidCategory  = "Invalid category ID"
	MsgInvalidTagPrefix = "Invalid tag ID: "
)
