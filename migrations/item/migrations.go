// Package item embeds the goose migrations for the item bounded context.
package item

import "embed"

// FS holds every item migration, applied in version order.
//
//go:embed *.sql
var FS embed.FS
