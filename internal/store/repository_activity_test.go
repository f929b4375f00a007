// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var activityRowColumns = []string{"id", "user_id", "category_id", "title", "description", "created_at", "updated_at", "name"}

func newTestActivityRepo(t *testing.T) (*activityRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, conn := newMockDB(t)
	return &activityRepository{DB: db, logger: logger.Nop()}, mock, conn
}

func expectActivityReload(mock sqlmock.Sqlmock, activityID int64) {
	mock.ExpectQuery("FROM activities a LEFT JOIN categories c").
		WithArgs(activityID).
		WillReturnRows(sqlmock.NewRows(activityRowColumns).
			AddRow(activityID, 1, 3, "Run", "", fixedNow, fixedNow, "Sport"))
	mock.ExpectQuery("FROM activity_tags atg JOIN tags t").
		WithArgs(activityID).
		WillReturnRows(sqlmock.NewRows([]string{"activity_id", "id", "name"}).
			AddRow(activityID, 7, "morning"))
}

func TestCreateActivity_InsertsActivityAndTagsInTransaction(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	categoryID := int64(3)
	activity := models.Activity{UserID: 1, Title: "Run", CategoryID: &categoryID, TagIDs: []int64{7}}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO activities").
		WithArgs(int64(1), &categoryID, "Run", "", fixedNow, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectExec("INSERT INTO activity_tags").
		WithArgs(int64(10), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectActivityReload(mock, 10)

	created, err := repo.CreateActivity(context.Background(), activity)

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	require.NotNil(t, created.CategoryName)
	assert.Equal(t, "Sport", *created.CategoryName)
	assert.Equal(t, []int64{7}, created.TagIDs)
	assert.Equal(t, []models.TagRef{{ID: 7, Name: "morning"}}, created.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivity_SerializationFailureIsNotRetried(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO activities").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	_, err := repo.CreateActivity(context.Background(), models.Activity{UserID: 1, Title: "Run"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateActivity_DeadlockIsNotRetried(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE activities").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectRollback()

	_, err := repo.UpdateActivity(context.Background(), models.Activity{ID: 10, UserID: 1, Title: "Run"}, false)

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivity_TagInsertFailureRollsBack(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO activities").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectExec("INSERT INTO activity_tags").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.CreateActivity(context.Background(), models.Activity{UserID: 1, Title: "Run", TagIDs: []int64{99}})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivity_CommitFailure(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO activities").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	_, err := repo.CreateActivity(context.Background(), models.Activity{UserID: 1, Title: "Run"})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestCreateActivity_RetriesSerializationFailure(t *testing.T) {
	old := retryBackoff
	retryBackoff = 0
	t.Cleanup(func() { retryBackoff = old })

	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO activities").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO activities").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()
	expectActivityReload(mock, 11)

	created, err := repo.CreateActivity(context.Background(), models.Activity{UserID: 1, Title: "Run"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateActivity_NotFoundRollsBack(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE activities SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.UpdateActivity(context.Background(), models.Activity{ID: 5, UserID: 2, Title: "x"}, true)

	assert.ErrorIs(t, err, ErrActivityNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateActivity_ReplacesTags(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE activities SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM activity_tags WHERE activity_id = ").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO activity_tags").
		WithArgs(int64(10), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectActivityReload(mock, 10)

	_, err := repo.UpdateActivity(context.Background(), models.Activity{ID: 10, UserID: 1, Title: "Run", TagIDs: []int64{7}}, true)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActivities_QueryError(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectQuery("FROM activities a").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListActivities(context.Background(), models.ActivityFilter{UserID: 1})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListActivities_EmptySkipsTagQuery(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectQuery("FROM activities a").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(activityRowColumns))

	activities, err := repo.ListActivities(context.Background(), models.ActivityFilter{UserID: 1})

	require.NoError(t, err)
	assert.Empty(t, activities)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteActivity(t *testing.T) {
	repo, mock, conn := newTestActivityRepo(t)
	defer conn.Close()

	mock.ExpectExec("DELETE FROM activities WHERE id = ").
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM activities").
		WithArgs(int64(6), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteActivity(context.Background(), 5, 1))
	assert.ErrorIs(t, repo.DeleteActivity(context.Background(), 6, 1), ErrActivityNotFound)
}
