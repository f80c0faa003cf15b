package bootstrap

import (
	"notekeeper-be/internal/config"
	"notekeeper-be/internal/controller"
	"notekeeper-be/internal/events"
	"notekeeper-be/internal/pkg/logger"
	"notekeeper-be/internal/pkg/sanitizer"
	"notekeeper-be/internal/repository/unitofwork"
	"notekeeper-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FolderController controller.IFolderController
	NoteController   controller.INoteController

	// Background consumer (run by main)
	AuditConsumer *events.AuditConsumer

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	san := sanitizer.New()

	// Event bus
	bus := events.NewBus()
	auditPublisher := events.NewAuditPublisher(bus, sysLogger)
	auditConsumer := events.NewAuditConsumer(bus, sysLogger)

	// Services
	folderService := service.NewFolderService(uowFactory, san, auditPublisher)
	noteService := service.NewNoteService(uowFactory, san, auditPublisher)

	// Controllers
	folderController := controller.NewFolderController(folderService)
	noteController := controller.NewNoteController(noteService)

	return &Container{
		FolderController: folderController,
		NoteController:   noteController,
		AuditConsumer:    auditConsumer,
		Logger:           sysLogger,
	}
}
