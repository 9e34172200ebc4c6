package assist

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/keyring"
	"clearday.dev/clearday/internal/logger"
	"clearday.dev/clearday/internal/models"
	"clearday.dev/clearday/internal/storage"
)

var (
	// ErrDisabled is returned when no credential is configured or
	// personalization is switched off.
	ErrDisabled = errors.New("assist features are not enabled")
	// ErrEmptyMessage rejects blank urge-support input.
	ErrEmptyMessage = errors.New("message cannot be empty")
)

var getAPIKey = keyring.GetAPIKey

// Role labels for urge-support conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one message of an urge-support conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CooldownError reports a generation attempt made before the cooldown
// elapsed. No network I/O happened.
type CooldownError struct {
	Seconds int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %d seconds before generating another message", e.Seconds)
}

// Facade fronts every AI feature: the enablement gate, the generation
// cooldown, prompt assembly, and persistence of generated content.
type Facade struct {
	mu            sync.Mutex
	store         *storage.Store
	client        Client
	now           func() time.Time
	lastMessageAt time.Time
	cooldownLeft  int
	countdownStop chan struct{}
}

func New(store *storage.Store, client Client) *Facade {
	return &Facade{
		store:  store,
		client: client,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (f *Facade) WithClock(now func() time.Time) *Facade {
	f.now = now
	return f
}

// Enabled reports whether AI features may run: a credential must be present
// and the personalization toggle on.
func (f *Facade) Enabled() bool {
	if !f.Personalization() {
		return false
	}
	_, err := getAPIKey()
	return err == nil
}

func (f *Facade) Personalization() bool {
	return storage.Get(f.store, constants.KeyPersonalization, true)
}

func (f *Facade) SetPersonalization(on bool) {
	storage.Set(f.store, constants.KeyPersonalization, on)
}

// Messages returns the persisted history of generated messages.
func (f *Facade) Messages() []models.AIMessage {
	return storage.Get(f.store, constants.KeyMessages, []models.AIMessage{})
}

// UsedPrompts returns every journal prompt generated so far.
func (f *Facade) UsedPrompts() []string {
	return storage.Get(f.store, constants.KeyUsedPrompts, []string{})
}

// CooldownRemaining returns the seconds left before another personalized
// message may be generated.
func (f *Facade) CooldownRemaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cooldownLeft
}

// GenerateMessage produces a personalized motivational message. Calls made
// within the cooldown window return a CooldownError without touching the
// network. A successful result is appended to the persisted history; on
// failure callers keep whatever they were showing.
func (f *Facade) GenerateMessage(ctx context.Context, uc UserContext) (string, error) {
	if !f.Enabled() {
		return "", ErrDisabled
	}

	f.mu.Lock()
	now := f.now()
	if elapsed := now.Sub(f.lastMessageAt); elapsed < constants.AssistCooldown {
		remaining := int(math.Ceil((constants.AssistCooldown - elapsed).Seconds()))
		f.setCountdownLocked(remaining)
		f.mu.Unlock()
		return "", &CooldownError{Seconds: remaining}
	}
	f.lastMessageAt = now
	f.setCountdownLocked(int(constants.AssistCooldown.Seconds()))
	f.mu.Unlock()

	text, err := f.client.Generate(ctx, buildMessagePrompt(uc), messageSystemPrompt)
	if err != nil {
		return "", err
	}

	history := append(f.Messages(), models.AIMessage{Text: text, Timestamp: f.now()})
	storage.Set(f.store, constants.KeyMessages, history)
	return text, nil
}

// GenerateJournalPrompt produces a fresh reflection prompt, feeding every
// previously used prompt back into the request so repeats are avoided. The
// result is recorded before it is returned.
func (f *Facade) GenerateJournalPrompt(ctx context.Context, uc UserContext) (string, error) {
	if !f.Enabled() {
		return "", ErrDisabled
	}

	used := f.UsedPrompts()
	text, err := f.client.Generate(ctx, buildJournalPrompt(uc, used), journalSystemPrompt)
	if err != nil {
		return "", err
	}

	storage.Set(f.store, constants.KeyUsedPrompts, append(used, text))
	return text, nil
}

// UrgeSupport answers a message from a user working through a craving. The
// last six conversation turns travel with the request. Any remote failure
// degrades to a fixed supportive reply so the user is never left without a
// response.
func (f *Facade) UrgeSupport(ctx context.Context, userMessage string, history []ChatTurn, uc UserContext) (string, error) {
	if !f.Enabled() {
		return "", ErrDisabled
	}
	if strings.TrimSpace(userMessage) == "" {
		return "", ErrEmptyMessage
	}

	text, err := f.client.Generate(ctx, buildUrgePrompt(userMessage, history, uc), urgeSystemPrompt)
	if err != nil {
		logger.Debug("urge support falling back", "error", err)
		return constants.UrgeFallbackMessage, nil
	}
	return text, nil
}

// Close cancels the cooldown countdown, if one is running.
func (f *Facade) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countdownStop != nil {
		close(f.countdownStop)
		f.countdownStop = nil
	}
	f.cooldownLeft = 0
}

// setCountdownLocked starts the once-per-second countdown, replacing any
// countdown already running. Callers hold f.mu.
func (f *Facade) setCountdownLocked(seconds int) {
	if f.countdownStop != nil {
		close(f.countdownStop)
	}
	stop := make(chan struct{})
	f.countdownStop = stop
	f.cooldownLeft = seconds

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				f.mu.Lock()
				if f.countdownStop != stop {
					f.mu.Unlock()
					return
				}
				f.cooldownLeft--
				if f.cooldownLeft <= 0 {
					f.cooldownLeft = 0
					f.countdownStop = nil
					f.mu.Unlock()
					return
				}
				f.mu.Unlock()
			}
		}
	}()
}
