package ports

import (
	"context"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
)

// ScanRecorder persiste el resultado de cada ciclo de escaneo para auditoría.
type ScanRecorder interface {
	// SaveCycle registra el resumen del ciclo y la mejor oportunidad si la hubo.
	SaveCycle(ctx context.Context, marketsScanned, candidates int, best *domain.Opportunity) error

	// Close cierra la conexión limpiamente.
	Close() error
}
