// Package domain defines the core types for symbol-based launch configuration
// generation.
package domain

// Language represents a programming language.
type Language string

// Supported languages for configuration generation.
const (
	LanguageGo         Language = "go"
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageTypeScript Language = "typescript"
)
