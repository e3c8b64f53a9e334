package ledger_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(provideLedgerRepo, provideLedgerService, provideLedgerController)

func provideLedgerRepo(db *gorm.DB) repositories.LedgerRepository {
	return repositories.NewLedgerRepository(db)
}

func provideLedgerService(db *gorm.DB, ledgerRepo repositories.LedgerRepository) services.LedgerServiceInterface {
	return services.NewLedgerService(db, ledgerRepo)
}

func provideLedgerController(ledgerService services.LedgerServiceInterface) *controllers.LedgerController {
	return controllers.NewLedgerController(ledgerService)
}
