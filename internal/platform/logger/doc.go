// Package logger provides structured logging setup and context carriage
// for the application.
package logger
