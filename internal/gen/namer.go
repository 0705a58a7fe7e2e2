package gen

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// Identifier derivation for generated code. All names flow from the
// canonical UPPER_SNAKE schema names, so emission stays deterministic.

// acronyms are tokens spelled in full caps in exported identifiers.
var acronyms = map[string]string{
	"api":   "API",
	"db":    "DB",
	"http":  "HTTP",
	"https": "HTTPS",
	"id":    "ID",
	"json":  "JSON",
	"jwt":   "JWT",
	"sql":   "SQL",
	"tls":   "TLS",
	"toml":  "TOML",
	"ttl":   "TTL",
	"uri":   "URI",
	"url":   "URL",
	"yaml":  "YAML",
}

// exported converts a canonical schema name to an exported Go identifier:
// DATABASE_URL -> DatabaseURL, user-service -> UserService.
func exported(name string) string {
	tokens := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '_' || r == '-'
	})

	for i, tok := range tokens {
		if up, ok := acronyms[tok]; ok {
			tokens[i] = up
		} else {
			tokens[i] = inflect.Capitalize(tok)
		}
	}

	return strings.Join(tokens, "")
}

// unexported converts a canonical schema name to an unexported identifier:
// DATABASE -> database, ORDER_QUEUE -> orderQueue.
func unexported(name string) string {
	s := strings.ToLower(strings.ReplaceAll(name, "-", "_"))

	return inflect.CamelizeDownFirst(s)
}

// subjectTypeName is the accessor struct type for a subject:
// DATABASE -> DatabaseConfig.
func subjectTypeName(subject string) string {
	return exported(subject) + "Config"
}

// appTypeName is the aggregate container type for an application:
// order-service -> OrderServiceConfig.
func appTypeName(app string) string {
	return exported(app) + "Config"
}
