package service

import (
	"path/filepath"
	"testing"

	"notekeeper-be/internal/events"
	"notekeeper-be/internal/model"
	"notekeeper-be/internal/pkg/logger"
	"notekeeper-be/internal/pkg/sanitizer"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/pkg/database"

	"github.com/stretchr/testify/require"
)

// newTestServices wires both services onto a fresh in-memory sqlite DB with
// foreign keys enforced, so cascade behavior matches the postgres schema.
func newTestServices(t *testing.T) (IFolderService, INoteService) {
	t.Helper()

	db, err := database.NewSqliteDB("file::memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Folder{}, &model.Note{}))

	uowFactory := unitofwork.NewRepositoryFactory(db)
	san := sanitizer.New()
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	audit := events.NewAuditPublisher(events.NewBus(), log)

	return NewFolderService(uowFactory, san, audit), NewNoteService(uowFactory, san, audit)
}
