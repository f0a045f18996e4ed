package user

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"
)

func TestGetName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	defer db.Close()

	repo := NewRepository(&dbpg.DB{Master: db})

	query := regexp.QuoteMeta(`
		SELECT name
		FROM users
		WHERE id = $1;
    `)

	mock.ExpectQuery(query).
		WithArgs("vol-1").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Jane"))

	name, err := repo.GetName(context.Background(), "vol-1")
	assert.NoError(t, err)
	assert.Equal(t, "Jane", name)

	mock.ExpectQuery(query).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	name, err = repo.GetName(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Empty(t, name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
