package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/contact-assistant/internal/assistant"
)

// MockAssistant records the lines a session forwards, using `testify/mock`.
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Welcome() string       { return m.Called().String(0) }
func (m *MockAssistant) Interrupted() string   { return m.Called().String(0) }
func (m *MockAssistant) Suggestions() []string { return m.Called().Get(0).([]string) }

func (m *MockAssistant) Execute(line string) assistant.Reply {
	return m.Called(line).Get(0).(assistant.Reply)
}

func TestPlainSession_ForwardsLinesVerbatim(t *testing.T) {
	a := new(MockAssistant)
	a.On("Welcome").Return("hi").Once()
	a.On("Execute", "  add John 1234567890 ").Return(assistant.Reply{Text: "added"}).Once()
	a.On("Execute", "").Return(assistant.Reply{Text: "empty"}).Once()
	a.On("Execute", "close").Return(assistant.Reply{Text: "bye", Exit: true}).Once()

	var out bytes.Buffer
	in := strings.NewReader("  add John 1234567890 \n\nclose\nhello\n")
	require.NoError(t, NewPlainSession(a, in, &out).Run(context.Background()))

	a.AssertExpectations(t)
	a.AssertNotCalled(t, "Execute", "hello")
	a.AssertNotCalled(t, "Interrupted")
	assert.Contains(t, out.String(), "added\n")
}

func TestNewModel_UsesSuggestions(t *testing.T) {
	a := new(MockAssistant)
	a.On("Suggestions").Return([]string{"hello", "help"}).Once()

	m := NewModel(a)

	a.AssertExpectations(t)
	assert.True(t, m.input.ShowSuggestions)
}
