package discord

import (
	"fmt"

	"github.com/adrnf/catet/internal/ledger"
	"github.com/adrnf/catet/internal/todo"
)

type todoRenderer struct{}

func (todoRenderer) Empty() string { return "📝 You have no todos." }

func (todoRenderer) Format(t *todo.Todo) string {
	return fmt.Sprintf("**#%d**: %s", t.ID, t.Text)
}

func (todoRenderer) Noun() string { return "todos" }

// entryRenderer formats ledger entries with the owning domain's noun and
// currency policy.
type entryRenderer struct {
	noun  string
	money MoneyFormatter
}

func (r entryRenderer) Empty() string { return "💰 You have no " + r.noun + "." }

func (r entryRenderer) Format(e *ledger.Entry) string {
	return fmt.Sprintf("%s **#%d**: %s\n💳 %s • %s\n🕐 %s\n",
		typeIcon(e.Type), e.ID, e.Name, e.Account, r.money.Format(e.Amount), formatDate(e.OccurredAt))
}

func (r entryRenderer) Noun() string { return r.noun }

func typeIcon(t ledger.TxType) string {
	if t == ledger.TypeIncome {
		return "📈"
	}

	return "📉"
}
