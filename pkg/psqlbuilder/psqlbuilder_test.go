package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("suitable_time_ranges").
		Where(squirrel.Eq{"application_section_id": int64(5)}).
		Where(squirrel.Eq{"day_of_week": 2}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM suitable_time_ranges WHERE application_section_id = $1 AND day_of_week = $2", query)
	assert.Equal(t, []interface{}{int64(5), 2}, args)
}

func TestDelete(t *testing.T) {
	query, _, err := Delete("suitable_time_ranges").Where(squirrel.Eq{"application_section_id": 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM suitable_time_ranges WHERE application_section_id = $1", query)
}
