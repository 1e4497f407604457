package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrnf/catet/internal/ledger"
	"github.com/adrnf/catet/internal/todo"
)

func TestEntryPatch(t *testing.T) {
	type testCase struct {
		name string
		opts []*discordgo.ApplicationCommandInteractionDataOption
		want func(t *testing.T, p ledger.Patch)
	}

	tests := []testCase{
		{
			name: "Empty",
			opts: nil,
			want: func(t *testing.T, p ledger.Patch) {
				assert.True(t, p.Empty())
			},
		},
		{
			name: "NameOnly",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "Dinner"},
			},
			want: func(t *testing.T, p ledger.Patch) {
				require.NotNil(t, p.Name)
				assert.Equal(t, "Dinner", *p.Name)
				assert.Nil(t, p.Amount)
				assert.Nil(t, p.Account)
				assert.Nil(t, p.Type)
			},
		},
		{
			name: "AllFields",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "Dinner"},
				{Name: "amount", Type: discordgo.ApplicationCommandOptionNumber, Value: float64(25.75)},
				{Name: "account", Type: discordgo.ApplicationCommandOptionString, Value: "debit"},
				{Name: "type", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(1)},
			},
			want: func(t *testing.T, p ledger.Patch) {
				require.NotNil(t, p.Amount)
				assert.True(t, p.Amount.Equal(decimal.NewFromFloat(25.75)))
				require.NotNil(t, p.Account)
				assert.Equal(t, "debit", *p.Account)
				require.NotNil(t, p.Type)
				assert.Equal(t, ledger.TypeIncome, *p.Type)
			},
		},
		{
			name: "ZeroAmountIsStillSet",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "amount", Type: discordgo.ApplicationCommandOptionNumber, Value: float64(0)},
			},
			want: func(t *testing.T, p ledger.Patch) {
				require.NotNil(t, p.Amount)
				assert.True(t, p.Amount.IsZero())
				assert.False(t, p.Empty())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, entryPatch(options(tt.opts)))
		})
	}
}

func TestTodoRenderer_Format(t *testing.T) {
	r := todoRenderer{}

	got := r.Format(&todo.Todo{ID: 12, Text: "buy milk"})

	assert.Equal(t, "**#12**: buy milk", got)
	assert.Equal(t, "todos", r.Noun())
	assert.Equal(t, "📝 You have no todos.", r.Empty())
}

func TestEntryRenderer_Format(t *testing.T) {
	r := entryRenderer{noun: "expenses", money: usd}

	e := &ledger.Entry{
		ID:         3,
		Name:       "Lunch",
		Amount:     decimal.NewFromFloat(12.5),
		Account:    "cash",
		Type:       ledger.TypeExpense,
		OccurredAt: time.Date(2025, 8, 30, 14, 5, 0, 0, time.UTC),
	}

	assert.Equal(t, "📉 **#3**: Lunch\n💳 cash • $12.50\n🕐 Aug 30, 2025, 02:05 PM\n", r.Format(e))

	e.Type = ledger.TypeIncome
	assert.Equal(t, "📈 **#3**: Lunch\n💳 cash • $12.50\n🕐 Aug 30, 2025, 02:05 PM\n", r.Format(e))
}

func TestPerPage(t *testing.T) {
	assert.Equal(t, 5, options(nil).perPage())

	opts := options([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "per-page", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(15)},
	})
	assert.Equal(t, 15, opts.perPage())
}
