package repositories

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDuplicateEntry = 1062

// isDuplicateKey reports whether err is a MySQL duplicate-entry violation.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry
}

// isDuplicatePrimaryKey narrows isDuplicateKey to primary-key collisions,
// which callers resolve by regenerating the random identifier.
func isDuplicatePrimaryKey(err error) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != mysqlErrDuplicateEntry {
		return false
	}
	return strings.Contains(me.Message, "PRIMARY")
}
