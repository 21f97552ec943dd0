package migrations

import "embed"

// FS embeds the schema migrations for the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
