package email

import "sync"

// MockSender records outbound mail instead of delivering it. Used in
// development when SMTP is not configured, and by tests to assert on the
// codes and links that would have been sent.
type MockSender struct {
	mu    sync.Mutex
	Calls []MockCall
}

type MockCall struct {
	Kind string // verification, welcome, password_reset, reset_success
	To   string
	Code string
	URL  string
}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) SendVerification(to, code string) error {
	m.record(MockCall{Kind: "verification", To: to, Code: code})
	return nil
}

func (m *MockSender) SendWelcome(to, name string) error {
	m.record(MockCall{Kind: "welcome", To: to})
	return nil
}

func (m *MockSender) SendPasswordReset(to, resetURL string) error {
	m.record(MockCall{Kind: "password_reset", To: to, URL: resetURL})
	return nil
}

func (m *MockSender) SendResetSuccess(to string) error {
	m.record(MockCall{Kind: "reset_success", To: to})
	return nil
}

func (m *MockSender) record(c MockCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, c)
}

// Last returns the most recent call of the given kind, or nil.
func (m *MockSender) Last(kind string) *MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.Calls) - 1; i >= 0; i-- {
		if m.Calls[i].Kind == kind {
			call := m.Calls[i]
			return &call
		}
	}
	return nil
}
