package gormtx

import (
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a session whose statements execute on tx instead of the
// connection pool, so repository calls made through it join the caller's
// transaction. Same mechanism gorm uses for its own Begin.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return session
}
