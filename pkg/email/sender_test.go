package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justerika/signup-gateway/pkg/email"
)

func TestValidAddress(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last@sub.example.co.uk",
		"user+tag@example.io",
		"weird!#$%@example.com",
	}
	for _, addr := range valid {
		assert.True(t, email.ValidAddress(addr), addr)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user @example.com",
		"user@exa mple.com",
		"two@@example.com",
	}
	for _, addr := range invalid {
		assert.False(t, email.ValidAddress(addr), addr)
	}
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	base := email.Message{
		To:       "user@example.com",
		Subject:  "Hello",
		TextBody: "body",
	}

	tests := []struct {
		name    string
		mutate  func(*email.Message)
		wantErr bool
	}{
		{name: "valid", mutate: func(*email.Message) {}},
		{name: "html body only", mutate: func(m *email.Message) { m.TextBody = ""; m.HTMLBody = "<p>hi</p>" }},
		{name: "missing to", mutate: func(m *email.Message) { m.To = "" }, wantErr: true},
		{name: "bad to", mutate: func(m *email.Message) { m.To = "not-an-email" }, wantErr: true},
		{name: "missing subject", mutate: func(m *email.Message) { m.Subject = "  " }, wantErr: true},
		{name: "missing body", mutate: func(m *email.Message) { m.TextBody = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := base
			tt.mutate(&msg)
			err := msg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTemplateMessage_Validate(t *testing.T) {
	t.Parallel()

	valid := email.TemplateMessage{To: "user@example.com", TemplateID: 123}
	assert.NoError(t, valid.Validate())

	noTo := email.TemplateMessage{TemplateID: 123}
	assert.ErrorIs(t, noTo.Validate(), email.ErrInvalidParams)

	noTemplate := email.TemplateMessage{To: "user@example.com"}
	assert.ErrorIs(t, noTemplate.Validate(), email.ErrInvalidParams)
}

func TestNewPostmarkSender_RequiresToken(t *testing.T) {
	t.Parallel()

	_, err := email.NewPostmarkSender(email.Config{})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	assert.Panics(t, func() {
		email.MustNewPostmarkSender(email.Config{})
	})

	s, err := email.NewPostmarkSender(email.Config{ServerToken: "token", MessageStream: "outbound"})
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNew_BackendSelection(t *testing.T) {
	t.Parallel()

	s, ok, err := email.New(email.Config{DevDir: t.TempDir()})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.IsType(t, &email.DevSender{}, s)

	s, ok, err = email.New(email.Config{ServerToken: "token"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, s)

	s, ok, err = email.New(email.Config{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.IsType(t, email.DisabledSender{}, s)
}

func TestDisabledSender(t *testing.T) {
	t.Parallel()

	s := email.DisabledSender{}
	err := s.Send(t.Context(), "from@example.com", email.Message{
		To: "user@example.com", Subject: "x", TextBody: "y",
	})
	assert.ErrorIs(t, err, email.ErrSendingDisabled)

	err = s.SendTemplate(t.Context(), "from@example.com", email.TemplateMessage{
		To: "user@example.com", TemplateID: 1,
	})
	assert.ErrorIs(t, err, email.ErrSendingDisabled)
}
