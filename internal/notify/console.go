package notify

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/byronbogasai-cmd/gabagool-clone/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console imprime el resumen de P&L del ledger.
type Console struct {
	out io.Writer
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// PrintSummary imprime los agregados del ledger como tabla.
// Con un ledger sin inicializar no imprime nada.
func (c *Console) PrintSummary(ledger domain.Ledger) {
	if ledger.InitialCapital == 0 {
		fmt.Fprintln(c.out, "no ledger found, nothing to summarize")
		return
	}

	fmt.Fprintf(c.out, "\nBOT P&L SUMMARY - %s\n", time.Now().Format("2006-01-02 15:04:05"))

	table := tablewriter.NewWriter(c.out)
	table.Header("Metric", "Value")
	table.Append("Initial capital", fmt.Sprintf("$%.4f", ledger.InitialCapital))
	table.Append("Current capital", fmt.Sprintf("$%.4f", ledger.CurrentCapital))
	table.Append("Total profit", fmt.Sprintf("$%.4f", ledger.TotalProfit))
	table.Append("Return", fmt.Sprintf("%+.2f%%", ledger.TotalReturn()))
	table.Append("Total trades", fmt.Sprintf("%d", ledger.TotalTrades))
	table.Append("Win rate", fmt.Sprintf("%.1f%%", ledger.WinRate()))
	table.Render()

	if n := len(ledger.Trades); n > 0 {
		last := ledger.Trades[n-1]
		fmt.Fprintf(c.out, "last trade: %s | %s | est $%.4f | success=%v\n",
			last.TS, last.Market, last.ProfitEst, last.Success)
	}
}
