package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db, "yahudim"), mock
}

func TestPostgresStoreInitialize(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS app_documents").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO app_documents .* ON CONFLICT \\(name\\) DO NOTHING").
		WithArgs("yahudim", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Initialize(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoad(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT content FROM app_documents WHERE name = \\$1").
		WithArgs("yahudim").
		WillReturnRows(sqlmock.NewRows([]string{"content"}).
			AddRow([]byte(`{"qanda_questions":[{"id":5,"name":"Anonymous","text":"Who?","isRead":true,"timestamp":5}]}`)))

	doc, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Questions, 1)
	assert.True(t, doc.Questions[0].IsRead)
	assert.NotNil(t, doc.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreLoadCorrupt(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT content FROM app_documents").
		WithArgs("yahudim").
		WillReturnRows(sqlmock.NewRows([]string{"content"}).AddRow([]byte(`[1,2,3]`)))

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorruptStore)
}

func TestPostgresStoreLoadMissingRow(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT content FROM app_documents").
		WithArgs("yahudim").
		WillReturnRows(sqlmock.NewRows([]string{"content"}))

	_, err := s.Load(context.Background())
	assert.Error(t, err)
}

func TestPostgresStoreSave(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("UPDATE app_documents SET content = \\$1, updated_at = NOW\\(\\) WHERE name = \\$2").
		WithArgs(sqlmock.AnyArg(), "yahudim").
		WillReturnResult(sqlmock.NewResult(0, 1))

	doc := NewDocument()
	doc.Notes = append(doc.Notes, Note{ID: 1, Title: "John 3:16", Content: "For God so loved"})
	require.NoError(t, s.Save(context.Background(), doc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSaveWithoutRow(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("UPDATE app_documents").
		WithArgs(sqlmock.AnyArg(), "yahudim").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.Error(t, s.Save(context.Background(), NewDocument()))
}
