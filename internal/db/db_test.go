package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigTranslatesDriverErrors(t *testing.T) {
	// Without TranslateError a Postgres unique violation stays a raw
	// *pgconn.PgError and never matches gorm.ErrDuplicatedKey, so the
	// register conflict mapping would silently turn into a 500.
	assert.True(t, Config().TranslateError)
}
