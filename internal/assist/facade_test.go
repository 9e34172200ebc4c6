package assist

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/keyring"
	"clearday.dev/clearday/internal/storage"
)

type stubClient struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (c *stubClient) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func (c *stubClient) lastPrompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.prompts) == 0 {
		return ""
	}
	return c.prompts[len(c.prompts)-1]
}

func withAPIKey(t *testing.T, key string, err error) {
	t.Helper()
	orig := getAPIKey
	getAPIKey = func() (string, error) { return key, err }
	t.Cleanup(func() { getAPIKey = orig })
}

func newTestFacade(t *testing.T, client Client) *Facade {
	t.Helper()
	backend, err := storage.NewDiskvBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	store := storage.NewStore(backend, storage.WithDebounce(time.Millisecond))
	t.Cleanup(func() { store.Close() })
	f := New(store, client)
	t.Cleanup(f.Close)
	return f
}

func TestEnabledRequiresKeyAndToggle(t *testing.T) {
	f := newTestFacade(t, &stubClient{})

	withAPIKey(t, "", keyring.ErrNotFound)
	if f.Enabled() {
		t.Error("enabled without a credential")
	}

	withAPIKey(t, "sk-test", nil)
	if !f.Enabled() {
		t.Error("not enabled with credential and personalization on")
	}

	f.SetPersonalization(false)
	if f.Enabled() {
		t.Error("enabled with personalization off")
	}
}

func TestGenerateMessageCooldown(t *testing.T) {
	withAPIKey(t, "sk-test", nil)
	client := &stubClient{reply: "keep going"}
	f := newTestFacade(t, client)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	f.WithClock(func() time.Time { return now })

	if _, err := f.GenerateMessage(context.Background(), UserContext{}); err != nil {
		t.Fatalf("first generation failed: %v", err)
	}

	// Within the window: a cooldown result, no network call.
	calls := len(client.prompts)
	_, err := f.GenerateMessage(context.Background(), UserContext{})
	var cooldown *CooldownError
	if !errors.As(err, &cooldown) {
		t.Fatalf("err = %v, want CooldownError", err)
	}
	if cooldown.Seconds < 1 || cooldown.Seconds > 10 {
		t.Errorf("cooldown seconds = %d, want within (0,10]", cooldown.Seconds)
	}
	if len(client.prompts) != calls {
		t.Error("cooldown call still reached the client")
	}

	// After the window the next generation goes through.
	now = now.Add(constants.AssistCooldown)
	if _, err := f.GenerateMessage(context.Background(), UserContext{}); err != nil {
		t.Errorf("generation after cooldown failed: %v", err)
	}
}

func TestGenerateMessagePersistsHistory(t *testing.T) {
	withAPIKey(t, "sk-test", nil)
	f := newTestFacade(t, &stubClient{reply: "one step at a time"})

	text, err := f.GenerateMessage(context.Background(), UserContext{Name: "Sam", SobrietyDays: 12})
	if err != nil {
		t.Fatal(err)
	}
	if text != "one step at a time" {
		t.Errorf("text = %q", text)
	}

	msgs := f.Messages()
	if len(msgs) != 1 || msgs[0].Text != "one step at a time" {
		t.Errorf("persisted messages = %+v", msgs)
	}
}

func TestGenerateMessageDisabled(t *testing.T) {
	withAPIKey(t, "", keyring.ErrNotFound)
	client := &stubClient{reply: "never sent"}
	f := newTestFacade(t, client)

	if _, err := f.GenerateMessage(context.Background(), UserContext{}); !errors.Is(err, ErrDisabled) {
		t.Errorf("err = %v, want ErrDisabled", err)
	}
	if len(client.prompts) != 0 {
		t.Error("disabled call reached the client")
	}
}

func TestJournalPromptFeedsBackUsedPrompts(t *testing.T) {
	withAPIKey(t, "sk-test", nil)
	client := &stubClient{reply: "What surprised you this week?"}
	f := newTestFacade(t, client)

	first, err := f.GenerateJournalPrompt(context.Background(), UserContext{})
	if err != nil {
		t.Fatal(err)
	}
	if used := f.UsedPrompts(); len(used) != 1 || used[0] != first {
		t.Fatalf("used prompts = %v", used)
	}

	client.reply = "What gave you strength today?"
	if _, err := f.GenerateJournalPrompt(context.Background(), UserContext{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(client.lastPrompt(), first) {
		t.Error("second request did not carry the previously used prompt")
	}
	if used := f.UsedPrompts(); len(used) != 2 {
		t.Errorf("used prompts = %v, want 2", used)
	}
}

func TestUrgeSupportFallsBackOnFailure(t *testing.T) {
	withAPIKey(t, "sk-test", nil)
	f := newTestFacade(t, &stubClient{err: ErrUnavailable})

	reply, err := f.UrgeSupport(context.Background(), "I want a drink", nil, UserContext{})
	if err != nil {
		t.Fatalf("err = %v, want nil with fallback", err)
	}
	if reply != constants.UrgeFallbackMessage {
		t.Errorf("reply = %q, want fallback message", reply)
	}
}

func TestUrgeSupportRejectsEmptyMessage(t *testing.T) {
	withAPIKey(t, "sk-test", nil)
	f := newTestFacade(t, &stubClient{reply: "here"})

	if _, err := f.UrgeSupport(context.Background(), "   ", nil, UserContext{}); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("err = %v, want ErrEmptyMessage", err)
	}
}

func TestUrgeSupportSendsOnlyRecentHistory(t *testing.T) {
	withAPIKey(t, "sk-test", nil)
	client := &stubClient{reply: "breathe"}
	f := newTestFacade(t, client)

	var history []ChatTurn
	for i := 0; i < 5; i++ {
		history = append(history,
			ChatTurn{Role: RoleUser, Content: "user message " + string(rune('0'+i))},
			ChatTurn{Role: RoleAssistant, Content: "assistant message " + string(rune('0'+i))},
		)
	}

	if _, err := f.UrgeSupport(context.Background(), "still struggling", history, UserContext{}); err != nil {
		t.Fatal(err)
	}

	prompt := client.lastPrompt()
	if strings.Contains(prompt, "user message 0") {
		t.Error("prompt includes turns older than the last six")
	}
	if !strings.Contains(prompt, "assistant message 4") {
		t.Error("prompt is missing the most recent turn")
	}
}
