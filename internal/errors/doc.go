// Package apperrors defines the application's error types, exit codes, and
// the mapping from failed convolution runs to process exit statuses.
package apperrors
