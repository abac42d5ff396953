// Package validation validates configuration and request parameter structs
// using go-playground/validator struct tags.
package validation
