package migrations

import "embed"

// FS embeds the SQL migrations, read through the iofs source driver
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version required by the server
const Version = 1
