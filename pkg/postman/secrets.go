package postman

import "strings"

// Environment variable types understood by the API. Variables typed as
// secret are masked by the Postman UI.
const (
	VariableTypeDefault = "default"
	VariableTypeSecret  = "secret"
)

// sensitiveKeywords are matched as case-insensitive substrings of a variable
// name to decide whether it should be stored as a secret.
var sensitiveKeywords = []string{
	"key", "token", "secret", "password", "passwd",
	"pwd", "auth", "credential", "private", "apikey",
	"api_key", "bearer", "authorization",
}

// DetectVariableType returns VariableTypeSecret when the variable name looks
// sensitive, VariableTypeDefault otherwise.
func DetectVariableType(key string) string {
	lower := strings.ToLower(key)
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lower, keyword) {
			return VariableTypeSecret
		}
	}

	return VariableTypeDefault
}
