package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/user/seriesdb/internal/model"
)

var showColumns = []string{"id", "name", "original_name", "homepage", "overview", "poster_id"}

func newMockRepo(t *testing.T) (*TVShowRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewTVShowRepository(db), mock
}

func TestFindByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "tv_shows" WHERE "tv_shows"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(showColumns).
			AddRow(7, "Dark", "Dark", "https://example.com", "Time travel", 3))

	show, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, show)
	assert.Equal(t, 7, show.ID)
	assert.Equal(t, "Dark", show.OriginalName)
	require.NotNil(t, show.PosterID)
	assert.Equal(t, 3, *show.PosterID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "tv_shows" WHERE "tv_shows"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(showColumns))

	show, err := repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, show)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "tv_shows" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows(showColumns).
			AddRow(2, "Andor", "Andor", "https://a", "a", nil).
			AddRow(1, "Dark", "Dark", "https://d", "d", nil))

	shows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "Andor", shows[0].Name)
	assert.Nil(t, shows[0].PosterID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCreates(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tv_shows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	show := model.NewTVShow("Dark", "Dark", "https://example.com", "Time travel", nil, 0)
	require.NoError(t, repo.Save(context.Background(), show))
	assert.Equal(t, 11, show.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUpdates(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tv_shows" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	show := model.NewTVShow("Dark", "Dark", "https://example.com", "Time travel", nil, 4)
	require.NoError(t, repo.Save(context.Background(), show))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tv_shows" WHERE "tv_shows"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
