package paginate_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrnf/catet/internal/paginate"
)

// itemRenderer is a minimal render strategy for tests.
type itemRenderer struct{}

func (itemRenderer) Empty() string          { return "You have no items." }
func (itemRenderer) Format(item int) string { return fmt.Sprintf("item %d", item) }
func (itemRenderer) Noun() string           { return "items" }

type renderCall struct {
	embed      *discordgo.MessageEmbed
	components []discordgo.MessageComponent
}

// fakeMessenger records every outbound call and signals each async one so
// tests can wait for the session goroutine without sleeping.
type fakeMessenger struct {
	mu         sync.Mutex
	replies    []string
	initial    []renderCall
	updates    []renderCall
	rejections []string
	edits      []renderCall
	editErr    error

	signal chan string
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{signal: make(chan string, 32)}
}

func (m *fakeMessenger) Respond(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.replies = append(m.replies, content)

	return nil
}

func (m *fakeMessenger) RespondEmbed(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.initial = append(m.initial, renderCall{embed: embed, components: components})

	return &discordgo.Message{ID: "msg-1", ChannelID: "chan-1"}, nil
}

func (m *fakeMessenger) Update(_ *discordgo.Interaction, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	m.mu.Lock()
	m.updates = append(m.updates, renderCall{embed: embed, components: components})
	m.mu.Unlock()

	m.signal <- "update"

	return nil
}

func (m *fakeMessenger) Ephemeral(_ *discordgo.Interaction, content string) error {
	m.mu.Lock()
	m.rejections = append(m.rejections, content)
	m.mu.Unlock()

	m.signal <- "ephemeral"

	return nil
}

func (m *fakeMessenger) Edit(_, _ string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	m.mu.Lock()
	m.edits = append(m.edits, renderCall{embed: embed, components: components})
	err := m.editErr
	m.mu.Unlock()

	m.signal <- "edit"

	return err
}

func (m *fakeMessenger) wait(t *testing.T, want string) {
	t.Helper()

	select {
	case got := <-m.signal:
		require.Equal(t, want, got)
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for %q", want)
	}
}

func click(messageID, userID, customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
			},
			Member:  &discordgo.Member{User: &discordgo.User{ID: userID}},
			Message: &discordgo.Message{ID: messageID},
		},
	}
}

func buttons(t *testing.T, components []discordgo.MessageComponent) []discordgo.Button {
	t.Helper()

	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3)

	out := make([]discordgo.Button, 3)
	for i, c := range row.Components {
		b, ok := c.(discordgo.Button)
		require.True(t, ok)
		out[i] = b
	}

	return out
}

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

func newSession(t *testing.T, n, pageSize int, timeout time.Duration) (*paginate.Session[int], *fakeMessenger, *paginate.Registry) {
	t.Helper()

	m := newFakeMessenger()
	reg := paginate.NewRegistry()

	s := paginate.New(paginate.Config[int]{
		Items:     items(n),
		PageSize:  pageSize,
		Title:     "Test Items",
		UserID:    "owner",
		Prefix:    "todo",
		Renderer:  itemRenderer{},
		Messenger: m,
		Registry:  reg,
		Timeout:   timeout,
	})

	return s, m, reg
}

func TestTotalPages(t *testing.T) {
	type testCase struct {
		name     string
		items    int
		pageSize int
		want     int
	}

	tests := []testCase{
		{name: "Empty", items: 0, pageSize: 5, want: 0},
		{name: "PartialPage", items: 3, pageSize: 5, want: 1},
		{name: "ExactPage", items: 10, pageSize: 5, want: 2},
		{name: "Remainder", items: 12, pageSize: 5, want: 3},
		{name: "SingleItemPages", items: 4, pageSize: 1, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newSession(t, tt.items, tt.pageSize, time.Minute)
			assert.Equal(t, tt.want, s.TotalPages())
		})
	}
}

func TestNew_BadPageSize(t *testing.T) {
	assert.Panics(t, func() {
		newSession(t, 5, 0, time.Minute)
	})
}

func TestStart_Empty(t *testing.T) {
	s, m, reg := newSession(t, 0, 5, time.Minute)

	require.NoError(t, s.Start(context.Background()))

	assert.Equal(t, []string{"You have no items."}, m.replies)
	assert.Empty(t, m.initial)
	assert.False(t, reg.Dispatch(click("msg-1", "owner", "todo_next")), "no session should be bound")
}

func TestStart_SinglePage(t *testing.T) {
	s, m, reg := newSession(t, 3, 5, time.Minute)

	require.NoError(t, s.Start(context.Background()))

	require.Len(t, m.initial, 1)
	assert.Nil(t, m.initial[0].components, "single page must not carry controls")
	assert.Equal(t, "item 1\nitem 2\nitem 3", m.initial[0].embed.Description)
	assert.Equal(t, "Page 1 of 1 • Total: 3 items", m.initial[0].embed.Footer.Text)
	assert.False(t, reg.Dispatch(click("msg-1", "owner", "todo_next")), "no subscription should be open")
}

func TestStart_MultiPageNavigation(t *testing.T) {
	s, m, reg := newSession(t, 12, 5, time.Minute)

	require.NoError(t, s.Start(context.Background()))

	require.Len(t, m.initial, 1)
	assert.Equal(t, "item 1\nitem 2\nitem 3\nitem 4\nitem 5", m.initial[0].embed.Description)
	assert.Equal(t, "Page 1 of 3 • Total: 12 items", m.initial[0].embed.Footer.Text)

	first := buttons(t, m.initial[0].components)
	assert.True(t, first[0].Disabled, "prev disabled on first page")
	assert.True(t, first[1].Disabled, "indicator always disabled")
	assert.Equal(t, "1/3", first[1].Label)
	assert.False(t, first[2].Disabled, "next enabled on first page")

	// next -> page 2
	require.True(t, reg.Dispatch(click("msg-1", "owner", "todo_next")))
	m.wait(t, "update")

	assert.Equal(t, "item 6\nitem 7\nitem 8\nitem 9\nitem 10", m.updates[0].embed.Description)

	mid := buttons(t, m.updates[0].components)
	assert.False(t, mid[0].Disabled)
	assert.False(t, mid[2].Disabled)

	// next -> last page
	require.True(t, reg.Dispatch(click("msg-1", "owner", "todo_next")))
	m.wait(t, "update")

	assert.Equal(t, "item 11\nitem 12", m.updates[1].embed.Description)
	assert.Equal(t, "Page 3 of 3 • Total: 12 items", m.updates[1].embed.Footer.Text)

	last := buttons(t, m.updates[1].components)
	assert.False(t, last[0].Disabled)
	assert.True(t, last[2].Disabled, "next disabled on last page")

	// next on the last page clamps
	require.True(t, reg.Dispatch(click("msg-1", "owner", "todo_next")))
	m.wait(t, "update")

	assert.Equal(t, "item 11\nitem 12", m.updates[2].embed.Description)

	// back to the first page, then prev clamps there
	for i := 0; i < 3; i++ {
		require.True(t, reg.Dispatch(click("msg-1", "owner", "todo_prev")))
		m.wait(t, "update")
	}

	assert.Equal(t, "item 1\nitem 2\nitem 3\nitem 4\nitem 5", m.updates[5].embed.Description)
	assert.Equal(t, "Page 1 of 3 • Total: 12 items", m.updates[5].embed.Footer.Text)
}

func TestCollect_WrongUser(t *testing.T) {
	s, m, reg := newSession(t, 12, 5, time.Minute)

	require.NoError(t, s.Start(context.Background()))

	require.True(t, reg.Dispatch(click("msg-1", "intruder", "todo_next")))
	m.wait(t, "ephemeral")

	assert.Equal(t, []string{"❌ These buttons are not for you!"}, m.rejections)
	assert.Empty(t, m.updates, "foreign clicks must not re-render")

	// The owner still sees page 1: state was untouched.
	require.True(t, reg.Dispatch(click("msg-1", "owner", "todo_next")))
	m.wait(t, "update")

	assert.Equal(t, "Page 2 of 3 • Total: 12 items", m.updates[0].embed.Footer.Text)
}

func TestExpiry_DisablesButtonsOnce(t *testing.T) {
	s, m, reg := newSession(t, 12, 5, 30*time.Millisecond)

	require.NoError(t, s.Start(context.Background()))

	require.True(t, reg.Dispatch(click("msg-1", "owner", "todo_next")))
	m.wait(t, "update")

	m.wait(t, "edit")

	m.mu.Lock()
	defer m.mu.Unlock()

	require.Len(t, m.edits, 1)
	assert.Equal(t, "item 6\nitem 7\nitem 8\nitem 9\nitem 10", m.edits[0].embed.Description,
		"final render keeps the current page")

	for i, b := range buttons(t, m.edits[0].components) {
		assert.True(t, b.Disabled, "button %d should be disabled after expiry", i)
	}

	assert.False(t, reg.Dispatch(click("msg-1", "owner", "todo_next")), "subscription must be closed")
}

func TestExpiry_EditFailureIsSwallowed(t *testing.T) {
	s, m, reg := newSession(t, 12, 5, 20*time.Millisecond)
	m.editErr = errors.New("message was deleted")

	require.NoError(t, s.Start(context.Background()))

	m.wait(t, "edit")

	assert.Eventually(t, func() bool {
		return !reg.Dispatch(click("msg-1", "owner", "todo_next"))
	}, time.Second, 5*time.Millisecond, "session should unbind even when the final edit fails")
}

func TestContextCancel_EndsWithoutFinalEdit(t *testing.T) {
	s, m, reg := newSession(t, 12, 5, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	cancel()

	assert.Eventually(t, func() bool {
		return !reg.Dispatch(click("msg-1", "owner", "todo_next"))
	}, time.Second, 5*time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.edits, "shutdown should not rewrite the message")
}
